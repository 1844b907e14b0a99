package systems

import (
	"os"

	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createShooterScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createShooterScene())
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := cfg.Menu.Title
	titleX := centeredX(title, titleFont, width)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Menu.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := getOptionLabel(option)
		x := centeredX(label, menuFont, width)
		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	hint := getMenuHint(LastInputMethod(e))
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centeredX(hint, hintFont, width), int(height)-16, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select   Space: Shoot"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	idx := int(option)
	if idx < 0 || idx >= len(cfg.Menu.MenuOptions) {
		return ""
	}
	return cfg.Menu.MenuOptions[idx]
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuStart,
				components.MainMenuExit,
			},
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

// centeredX returns the x at which s is horizontally centered in width.
func centeredX(s string, face font.Face, width float64) int {
	return int((width - float64(fonts.Width(face, s))) / 2)
}
