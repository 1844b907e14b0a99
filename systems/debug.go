package systems

import (
	"fmt"
	"image/color"

	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision box and prints entity counts when
// hitbox debugging is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvBullet) {
			c = color.RGBA{0, 255, 0, 255} // Green
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)

		// Draw outline
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	})

	ebitenutil.DebugPrintAt(screen, debugCounts(ecs.World), 4, cfg.C.Height-18)
}

func debugCounts(w donburi.World) string {
	return fmt.Sprintf("bullets:%d enemies:%d particles:%d tps:%.0f",
		countTagged(w, tags.Bullet), countTagged(w, tags.Enemy), countTagged(w, tags.Particle), ebiten.ActualTPS())
}

func countTagged(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}
