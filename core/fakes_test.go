package core

import (
	"sync"

	"github.com/hamidzr/movebox/model"
)

type fakeGeometry struct {
	mu             sync.Mutex
	containerWidth float32
	left, right    float32
	elementWidth   float32
	x              float32
}

func (f *fakeGeometry) ContainerWidth() float32 { return f.containerWidth }

func (f *fakeGeometry) ContainerPadding() (float32, float32) { return f.left, f.right }

func (f *fakeGeometry) ElementWidth() float32 { return f.elementWidth }

func (f *fakeGeometry) ElementX() float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.x
}

func (f *fakeGeometry) X() float32 { return f.ElementX() }

func (f *fakeGeometry) MoveX(x float32) {
	f.mu.Lock()
	f.x = x
	f.mu.Unlock()
}

// recordingDisplay keeps every write so tests can check ordering.
type recordingDisplay struct {
	mu         sync.Mutex
	coordinate string
	width      string
	status     string
	events     []string
	widthSets  int
}

func (d *recordingDisplay) SetCoordinate(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.coordinate = text
	d.events = append(d.events, "x="+text)
}

func (d *recordingDisplay) SetWidth(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.width = text
	d.widthSets++
	d.events = append(d.events, "width="+text)
}

func (d *recordingDisplay) SetStatus(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = text
	d.events = append(d.events, "status="+text)
}

func (d *recordingDisplay) snapshot() (coordinate, width, status string, events []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.coordinate, d.width, d.status, append([]string(nil), d.events...)
}

func (d *recordingDisplay) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = nil
}

// manualAnimator hands out moves that tests step by hand.
type manualAnimator struct {
	element *fakeGeometry
	moves   []*manualMove
}

type manualMove struct {
	req     model.AnimationRequest
	element *fakeGeometry
	from    float32
	stopped  bool
	finished bool
	stops    int
	done     chan struct{}
}

func (a *manualAnimator) Start(req model.AnimationRequest) model.Subscription {
	m := &manualMove{req: req, element: a.element, from: a.element.ElementX(), done: make(chan struct{})}
	a.moves = append(a.moves, m)
	return m
}

func (a *manualAnimator) last() *manualMove {
	return a.moves[len(a.moves)-1]
}

func (m *manualMove) begin() {
	m.req.OnStart()
}

func (m *manualMove) step(progress float32) {
	if m.stopped {
		return
	}
	m.element.MoveX(model.Lerp(m.from, m.req.TargetX, progress))
	m.req.OnProgress()
}

func (m *manualMove) finish() {
	if m.stopped || m.finished {
		return
	}
	m.step(1)
	m.finished = true
	m.req.OnComplete()
	close(m.done)
}

// Stop counts every call; only a call on a live move closes done.
func (m *manualMove) Stop() {
	m.stops++
	if m.stopped || m.finished {
		return
	}
	m.stopped = true
	close(m.done)
}

// instantAnimator completes every move inside Start.
type instantAnimator struct {
	manualAnimator
}

func (a *instantAnimator) Start(req model.AnimationRequest) model.Subscription {
	sub := a.manualAnimator.Start(req)
	m := a.last()
	m.begin()
	m.finish()
	return sub
}

func (m *manualMove) Done() <-chan struct{} { return m.done }
