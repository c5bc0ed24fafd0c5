package component

// Animation cycles FrameCount frames, advancing every FrameTime seconds.
type Animation struct {
	FrameCount int
	FrameTime  float64
	Frame      int
	Timer      float64
}

var AnimationComponent = NewComponent[Animation]()
