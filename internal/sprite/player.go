package sprite

import (
	"fmt"
	"path/filepath"

	"github.com/Hector2242/pokeclone/internal/render"
)

// Player sprite file names, one still image per idle facing and two
// walk frames per facing.
const (
	idleFrontFile = "idleFront.PNG"
	idleBackFile  = "idleBack.PNG"
	idleLeftFile  = "idleLeftView.PNG"
	idleRightFile = "IdleRightView.PNG"

	walkFront1File = "animationFront1.PNG"
	walkFront2File = "animationFront2.PNG"
	walkBack1File  = "animationBackWalk1.PNG"
	walkBack2File  = "animationBackWalk2.PNG"
	walkLeft1File  = "animationLeftWalk1.PNG"
	walkLeft2File  = "animationLeftWalk2.PNG"
	walkRight1File = "animationRightWalk1.PNG"
	walkRight2File = "animationRightWalk2.PNG"
)

// PlayerSprites owns the player's textures and resolves the idle frame
// or walk animation for each facing. A single Dispose releases
// everything it loaded.
type PlayerSprites struct {
	IdleDown  render.Image
	IdleUp    render.Image
	IdleLeft  render.Image
	IdleRight render.Image

	WalkDown  *Animation
	WalkUp    *Animation
	WalkLeft  *Animation
	WalkRight *Animation

	owned []render.Image
}

// LoadPlayerSprites loads the full set of player frames from dir.
// If any frame fails to load, the frames loaded so far are released
// before the error is returned.
func LoadPlayerSprites(loader render.ResourceLoader, dir string) (*PlayerSprites, error) {
	s := &PlayerSprites{}

	load := func(name string) (render.Image, error) {
		img, err := loader.LoadImage(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to load sprite %s: %w", name, err)
		}
		s.owned = append(s.owned, img)
		return img, nil
	}

	var err error
	if s.IdleDown, err = load(idleFrontFile); err != nil {
		return nil, s.fail(err)
	}
	if s.IdleUp, err = load(idleBackFile); err != nil {
		return nil, s.fail(err)
	}
	if s.IdleLeft, err = load(idleLeftFile); err != nil {
		return nil, s.fail(err)
	}
	if s.IdleRight, err = load(idleRightFile); err != nil {
		return nil, s.fail(err)
	}

	walk := func(name1, name2 string) (*Animation, error) {
		f1, err := load(name1)
		if err != nil {
			return nil, err
		}
		f2, err := load(name2)
		if err != nil {
			return nil, err
		}
		return NewAnimation(FrameDuration, f1, f2), nil
	}

	if s.WalkDown, err = walk(walkFront1File, walkFront2File); err != nil {
		return nil, s.fail(err)
	}
	if s.WalkUp, err = walk(walkBack1File, walkBack2File); err != nil {
		return nil, s.fail(err)
	}
	if s.WalkLeft, err = walk(walkLeft1File, walkLeft2File); err != nil {
		return nil, s.fail(err)
	}
	if s.WalkRight, err = walk(walkRight1File, walkRight2File); err != nil {
		return nil, s.fail(err)
	}

	return s, nil
}

// fail releases any frames loaded before the error.
func (s *PlayerSprites) fail(err error) error {
	s.Dispose()
	return err
}

// Dispose releases every texture this set loaded. Safe to call after a
// partial load.
func (s *PlayerSprites) Dispose() {
	for _, img := range s.owned {
		if img != nil {
			img.Dispose()
		}
	}
	s.owned = nil
}
