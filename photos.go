package pawsgo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// ErrNotAnImage is returned when a photo evidence file is not an image.
var ErrNotAnImage = errors.New("evidence file is not an image")

// AttachStartPhoto validates and stores the start-of-walk photo evidence.
// It reports whether the walk was found; an unknown id is absorbed.
func (app *App) AttachStartPhoto(walkID, path string) (bool, error) {
	return app.attachPhoto(walkID, path, true)
}

// AttachEndPhoto validates and stores the end-of-walk photo evidence.
// It reports whether the walk was found; an unknown id is absorbed.
func (app *App) AttachEndPhoto(walkID, path string) (bool, error) {
	return app.attachPhoto(walkID, path, false)
}

func (app *App) attachPhoto(walkID, path string, start bool) (bool, error) {
	if err := checkImage(path); err != nil {
		return false, err
	}

	walk, ok := app.Repo.GetWalk(walkID)
	if !ok {
		return false, nil
	}

	if start {
		walk.StartPhoto = path
	} else {
		walk.EndPhoto = path
	}

	found, err := app.Repo.UpdateWalk(walk)
	if err != nil {
		return found, fmt.Errorf("attaching photo to walk %s : %w", walkID, err)
	}

	app.Logger.Debug("photo evidence attached",
		zap.String("walk_id", walkID),
		zap.Bool("start", start),
	)
	return found, nil
}

// checkImage sniffs the file content and rejects anything that is not an image.
func checkImage(path string) error {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("detecting mime type of %s : %w", path, err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return ErrNotAnImage
	}
	return nil
}
