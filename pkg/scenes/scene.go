package scenes

import (
	"github.com/decker502/gingerrain/pkg/game"
)

// Scene is a type alias for game.Scene so callers can stay within this package.
type Scene = game.Scene

var (
	_ Scene           = (*GameScene)(nil)
	_ game.Disposable = (*GameScene)(nil)
	_ AudioPlayer     = (*game.AudioManager)(nil)
)
