package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/bryce26550/bullethell/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI holds the ebitenui panel shown when the game ends
type GameOverUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRestart func()

	// Widget references for updates
	scoreLabel *widget.Label
	bestLabel  *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewGameOverUI creates the game over panel. onRestart runs when Restart is clicked.
func NewGameOverUI(onRestart func()) *GameOverUI {
	gui := &GameOverUI{
		OnRestart: onRestart,
	}

	gui.loadFonts()
	gui.buildUI()

	return gui
}

func (gui *GameOverUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	gui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   40,
	}
	gui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	gui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (gui *GameOverUI) buildUI() {
	// Root container dims the frozen playfield behind the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.GameOver.Title, &gui.titleFace, &widget.LabelColor{
			Idle: cfg.GameOver.TitleColor,
		}),
	)
	panel.AddChild(titleLabel)

	gui.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &gui.normalFace, &widget.LabelColor{
			Idle: cfg.GameOver.TextColor,
		}),
	)
	panel.AddChild(gui.scoreLabel)

	gui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &gui.smallFace, &widget.LabelColor{
			Idle: cfg.GameOver.TextColor,
		}),
	)
	panel.AddChild(gui.bestLabel)

	restartButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 36),
		),
		widget.ButtonOpts.Image(gui.buttonImage()),
		widget.ButtonOpts.Text(cfg.GameOver.ButtonText, &gui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.GameOver.ButtonTextColor,
			Hover:   cfg.GameOver.ButtonTextHover,
			Pressed: cfg.GameOver.ButtonTextPressed,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if gui.OnRestart != nil {
				gui.OnRestart()
			}
		}),
	)
	panel.AddChild(restartButton)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("or press R / Enter", &gui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{R: 160, G: 160, B: 160, A: 255},
		}),
	)
	panel.AddChild(hintLabel)

	rootContainer.AddChild(panel)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (gui *GameOverUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.GameOver.ButtonIdle)
	hover := image.NewNineSliceColor(cfg.GameOver.ButtonHover)
	pressed := image.NewNineSliceColor(cfg.GameOver.ButtonPressed)
	disabled := image.NewNineSliceColor(color.RGBA{R: 40, G: 50, B: 40, A: 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetScores updates the final and best score labels.
func (gui *GameOverUI) SetScores(final, best int, newBest bool) {
	gui.scoreLabel.Label = fmt.Sprintf("Final score: %d", final)
	if newBest {
		gui.bestLabel.Label = fmt.Sprintf("New best: %d!", best)
	} else {
		gui.bestLabel.Label = fmt.Sprintf("Best: %d", best)
	}
}

func (gui *GameOverUI) Update() {
	gui.UI.Update()
}

func (gui *GameOverUI) Draw(screen *ebiten.Image) {
	gui.UI.Draw(screen)
}
