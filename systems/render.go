package systems

import (
	"image"
	"image/color"
	"slices"

	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Canvas is the drawing surface the playfield is rendered onto.
// Implementations only receive draw calls; nothing is read back.
type Canvas interface {
	// Fade covers the whole surface with c, leaving a trail of earlier frames
	// when c is translucent.
	Fade(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.Color)
}

// NewDrawPlayfield returns a renderer that draws the world onto a persistent
// offscreen image, so the fade leaves motion trails, and copies it to the screen.
func NewDrawPlayfield() func(*ecs.ECS, *ebiten.Image) {
	var trail *ebiten.Image
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if trail == nil {
			trail = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
		}
		RenderWorld(e.World, NewImageCanvas(trail))
		screen.DrawImage(trail, nil)
	}
}

// RenderWorld fades the canvas and draws the player, bullets, enemies and
// particles, in that order.
func RenderWorld(w donburi.World, c Canvas) {
	c.Fade(color.RGBA{A: cfg.Render.FadeAlpha})

	tags.Player.Each(w, func(e *donburi.Entry) {
		drawPlayer(c, components.Object.Get(e))
	})

	for _, e := range entriesBySeq(w, tags.Bullet) {
		obj := components.Object.Get(e)
		clr := cfg.Bullet.HostileColor
		if components.Bullet.Get(e).IsPlayer {
			clr = cfg.Bullet.PlayerColor
		}
		c.FillRect(obj.X, obj.Y, obj.W, obj.H, clr)
	}

	for _, e := range entriesBySeq(w, tags.Enemy) {
		drawEnemy(c, components.Object.Get(e))
	}

	tags.Particle.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		p := components.Particle.Get(e)
		base := cfg.Particle.Color
		c.FillRect(obj.X, obj.Y, obj.W, obj.H, color.NRGBA{
			R: base.R,
			G: base.G,
			B: base.B,
			A: uint8(p.Alpha() * 255),
		})
	})
}

func drawPlayer(c Canvas, obj *components.ObjectData) {
	c.FillRect(obj.X, obj.Y, obj.W, obj.H, cfg.Player.BodyColor)
	// Ship silhouette: apex at the top center, base along the bottom edge
	c.FillTriangle(
		obj.X+obj.W/2, obj.Y,
		obj.X, obj.Y+obj.H,
		obj.X+obj.W, obj.Y+obj.H,
		cfg.Player.ShipColor,
	)
}

func drawEnemy(c Canvas, obj *components.ObjectData) {
	c.FillRect(obj.X, obj.Y, obj.W, obj.H, cfg.Enemy.BodyColor)
	c.FillRect(obj.X+5, obj.Y+5, obj.W-10, obj.H-10, cfg.Enemy.InsetColor)
	c.FillRect(obj.X+10, obj.Y+10, obj.W-20, obj.H-20, cfg.Enemy.CoreColor)
}

func entriesBySeq(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	slices.SortFunc(out, func(a, b *donburi.Entry) int {
		sa, sb := components.Order.Get(a).Seq, components.Order.Get(b).Seq
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		}
		return 0
	})
	return out
}

// imageCanvas draws onto an ebiten image.
type imageCanvas struct {
	dst *ebiten.Image
}

// NewImageCanvas returns a Canvas backed by dst.
func NewImageCanvas(dst *ebiten.Image) Canvas {
	return &imageCanvas{dst: dst}
}

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func (c *imageCanvas) Fade(clr color.Color) {
	b := c.dst.Bounds()
	vector.FillRect(c.dst, 0, 0, float32(b.Dx()), float32(b.Dy()), clr, false)
}

func (c *imageCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *imageCanvas) FillTriangle(x1, y1, x2, y2, x3, y3 float64, clr color.Color) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	path.MoveTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.LineTo(float32(x3), float32(y3))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	c.dst.DrawTriangles(vs, is, whiteSubImage, op)
}
