package render

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/movebox/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStageFirstLayout tests that the box is placed once and the callback fires once
func TestStageFirstLayout(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	stage := NewStage(fyne.NewSize(100, 50), 10, 20, nil)
	calls := 0
	stage.OnFirstLayout(func() { calls++ })

	stage.Container.Resize(fyne.NewSize(400, 200))
	assert.Equal(t, 1, calls)
	assert.Equal(t, float32(10), stage.ElementX())
	assert.Equal(t, float32(100), stage.ElementWidth())
	assert.Equal(t, float32(400), stage.ContainerWidth())
	assert.Equal(t, float32(75), stage.Box.Position().Y)
	left, right := stage.ContainerPadding()
	assert.Equal(t, float32(10), left)
	assert.Equal(t, float32(20), right)

	// later passes keep the box where the animation left it
	stage.Box.Move(fyne.NewPos(200, 75))
	stage.Container.Resize(fyne.NewSize(500, 300))
	assert.Equal(t, 1, calls)
	assert.Equal(t, float32(200), stage.ElementX())
	assert.Equal(t, float32(125), stage.Box.Position().Y)

	// registering late runs immediately
	late := false
	stage.OnFirstLayout(func() { late = true })
	assert.True(t, late)
}

// TestStageTapAndHover tests the transparent track surface
func TestStageTapAndHover(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	taps := 0
	stage := NewStage(fyne.NewSize(40, 40), 8, 8, func() { taps++ })
	stage.Container.Resize(fyne.NewSize(300, 100))

	area, ok := stage.Container.Objects[1].(*trackArea)
	require.True(t, ok)
	area.Tapped(&fyne.PointEvent{})
	assert.Equal(t, 1, taps)

	area.MouseIn(nil)
	assert.Equal(t, float32(2), stage.Box.StrokeWidth)
	area.MouseOut()
	assert.Equal(t, float32(0), stage.Box.StrokeWidth)
}

func TestTrackLayoutMinSize(t *testing.T) {
	l := NewTrackLayout(fyne.NewSize(100, 60), 10, 20)
	assert.Equal(t, fyne.NewSize(130, 60+2*trackVerticalInset), l.MinSize(nil))
}

func TestFixedTrailingLayout(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	leading := widget.NewLabel("readouts")
	trailing := widget.NewButton("Move", nil)
	l := NewFixedTrailingLayout(120)
	l.Layout([]fyne.CanvasObject{leading, trailing}, fyne.NewSize(500, 80))

	assert.Equal(t, float32(380), leading.Size().Width)
	assert.Equal(t, float32(380), trailing.Position().X)
	assert.Equal(t, float32(120), trailing.Size().Width)

	min := l.MinSize([]fyne.CanvasObject{leading, trailing})
	assert.Equal(t, leading.MinSize().Width+120, min.Width)
}

// TestAnimatorMovesToTarget tests a full fyne driven move
func TestAnimatorMovesToTarget(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	box := canvas.NewRectangle(BoxColor())
	box.Move(fyne.NewPos(10, 5))
	animator := NewAnimator(box, fyne.AnimationLinear)

	var started, completed int
	sub := animator.Start(model.AnimationRequest{
		Duration: 10 * time.Millisecond,
		TargetX:  280,
		AnimationHooks: model.AnimationHooks{
			OnStart:    func() { started++ },
			OnComplete: func() { completed++ },
		},
	})

	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("animation did not finish")
	}
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, completed)
	assert.Equal(t, fyne.NewPos(280, 5), box.Position())

	assert.NotPanics(t, func() {
		sub.Stop()
		sub.Stop()
	})
}

func TestCurveByName(t *testing.T) {
	for _, name := range CurveNames() {
		curve, err := CurveByName(name)
		require.NoError(t, err, name)
		assert.InDelta(t, 1.0, curve(1), 0.0001, name)
	}

	curve, err := CurveByName(" Ease_In_Out ")
	require.NoError(t, err)
	assert.NotNil(t, curve)

	_, err = CurveByName("ease-in-ot")
	assert.ErrorIs(t, err, model.ErrUnknownEasing)
	assert.Contains(t, err.Error(), `did you mean "ease-in-out"`)

	_, err = CurveByName("zzz")
	assert.ErrorIs(t, err, model.ErrUnknownEasing)
	assert.Contains(t, err.Error(), "expected one of ease-in, ease-in-out, ease-out, linear")
}

func TestReadouts(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	r := NewReadouts()
	assert.Equal(t, model.StatusStationary, r.Status.Text)

	r.SetCoordinate("42 px")
	r.SetWidth("100 px")
	r.SetStatus(model.StatusMoving)
	assert.Equal(t, "42 px", r.Coordinate.Text)
	assert.Equal(t, "100 px", r.Width.Text)
	assert.Equal(t, model.StatusMoving, r.Status.Text)

	bar := NewControlBar(r, widget.NewButton("Move", nil))
	require.Len(t, bar.Objects, 2)
}

func TestMainThemeOverrides(t *testing.T) {
	th := MainTheme{Theme: test.Theme()}
	assert.Equal(t, BoxColor(), th.Color(theme.ColorNamePrimary, theme.VariantDark))
	assert.Equal(t, float32(15), th.Size(theme.SizeNameText))
	assert.Equal(t, test.Theme().Size(theme.SizeNameSelectionRadius), th.Size(theme.SizeNameSelectionRadius))
}
