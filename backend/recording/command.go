package recording

import (
	"slices"
	"sync"

	"github.com/gogpu/arimage"
)

// Command is one recorded draw.
type Command struct {
	// Label identifies the renderer, e.g. "red.obj+red.png".
	Label           string
	Model           arimage.Mat4
	Scale           float32
	View            arimage.Mat4
	Projection      arimage.Mat4
	ColorCorrection [4]float32
	Tint            arimage.RGBA
	Material        arimage.Material
}

// Recording is an append-only list of commands shared by every renderer
// of a backend. It is safe for concurrent use.
type Recording struct {
	mu   sync.Mutex
	cmds []Command
}

func (r *Recording) append(c Command) {
	r.mu.Lock()
	r.cmds = append(r.cmds, c)
	r.mu.Unlock()
}

// Commands returns a copy of the recorded commands in draw order.
func (r *Recording) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.cmds)
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cmds)
}

// Reset discards all recorded commands.
func (r *Recording) Reset() {
	r.mu.Lock()
	r.cmds = nil
	r.mu.Unlock()
}
