package render

import "fmt"

// Timeline fixes the frame count and per-frame delay of an animation.
// GIF delays are in hundredths of a second.
type Timeline struct {
	Frames  int
	DelayCS int
}

// TimeIncr returns the simulation-time step between frames in seconds.
func (t Timeline) TimeIncr() float64 {
	return 0.01 * float64(t.DelayCS)
}

// TotalTime returns the duration of the whole animation in seconds.
// The spin completes exactly one revolution over this span, so the
// animation loops seamlessly.
func (t Timeline) TotalTime() float64 {
	return t.TimeIncr() * float64(t.Frames)
}

// FrameTime returns the simulation time frame i is rendered at.
func (t Timeline) FrameTime(i int) float64 {
	return float64(i) * t.TimeIncr()
}

// FrameSink receives completed frames in render order. Ownership of
// buf transfers to the sink; the renderer never touches it again.
type FrameSink interface {
	AddFrame(buf []byte, delayCS int) error
}

// Animate renders every frame of the timeline and hands each buffer to
// the sink. progress, if non-nil, is called after each frame with the
// number of frames completed.
func Animate(r *Renderer, tl Timeline, sink FrameSink, progress func(done int)) error {
	if tl.Frames <= 0 {
		return fmt.Errorf("render: timeline needs at least one frame, got %d", tl.Frames)
	}

	total := tl.TotalTime()
	for i := 0; i < tl.Frames; i++ {
		buf := make([]byte, r.Width*r.Height)
		r.Frame(buf, tl.FrameTime(i), total)

		if err := sink.AddFrame(buf, tl.DelayCS); err != nil {
			return fmt.Errorf("render: sink rejected frame %d: %w", i, err)
		}
		if progress != nil {
			progress(i + 1)
		}
	}
	return nil
}
