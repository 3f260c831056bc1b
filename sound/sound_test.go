package sound

import "testing"

// Cues on a nil or failed player must be safe no-ops; headless CI has
// no audio device so this is the common path
func TestSilentPlayerIsSafe(t *testing.T) {
	var p *Player
	p.PowerFired()
	p.CataclysmStarted()
	p.UniverseBorn()
	p.Close()

	q := &Player{}
	q.PowerFired()
	q.Close()
}
