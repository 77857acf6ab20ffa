package app

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/noble/carousel"
	"github.com/pthm-cable/noble/config"
	"github.com/pthm-cable/noble/renderer"
	"github.com/pthm-cable/noble/telemetry"
	"github.com/pthm-cable/noble/ui"
)

// Update advances one frame: input, kinematics, carousel tweens and stars.
func (a *App) Update() {
	dt := rl.GetFrameTime()

	a.perf.StartFrame()
	a.perf.StartPhase(telemetry.PhaseInput)
	a.handleInput()
	a.applyActions()
	a.sess.SetCustomer(a.form.Customer())

	a.perf.StartPhase(telemetry.PhaseKinematics)
	if a.scene != nil {
		p, ok := a.pointer()
		a.scene.Step(p, ok, dt)
		a.cam.SetFOV(a.scene.Kin.FOV())
	}

	a.perf.StartPhase(telemetry.PhaseCarousel)
	a.sess.Advance(dt, a.screenW)

	a.perf.StartPhase(telemetry.PhaseStars)
	if a.starField != nil {
		a.starField.Update(dt)
	}

	a.frame++
	a.elapsed += float64(dt)
}

// Draw renders the frame. Widget intents are applied on the next Update.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	a.perf.StartPhase(telemetry.PhaseUniverse)
	a.drawUniverse()

	a.perf.StartPhase(telemetry.PhaseStars)
	if a.starField != nil && a.overlays.IsEnabled(ui.OverlayStars) {
		a.starR.Draw(a.starField.Stars())
	}

	a.perf.StartPhase(telemetry.PhaseCarousel)
	a.drawCarousel()

	a.perf.StartPhase(telemetry.PhaseUI)
	a.drawUI()

	a.perf.EndFrame()
	rl.EndDrawing()

	if a.frame%30 == 0 {
		a.lastPerf = a.perf.Stats()
	}
	a.flushIfDue()
}

// drawUniverse draws the particle field, or the gradient when unmounted,
// when the shader is unavailable or when the placeholder overlay is on.
func (a *App) drawUniverse() {
	if a.scene == nil || a.backdrop == nil {
		rl.DrawRectangleGradientV(0, 0, int32(a.screenW), int32(a.screenH), rl.Color{R: 17, G: 24, B: 39, A: 255}, rl.Black)
		return
	}
	if a.overlays.IsEnabled(ui.OverlayPlaceholder) {
		a.backdrop.Draw()
		return
	}
	a.universeR.Draw(a.scene, a.cam)
}

// cardLayout sizes the centred card for the viewport.
func (a *App) cardLayout() (centre mgl32.Vec2, w, h, xScale float32) {
	c := a.cfg.Carousel
	w = min(float32(c.CardWidth), a.screenW*0.9)
	h = w * float32(c.CardHeight/c.CardWidth)
	if maxH := a.screenH * 0.62; h > maxH {
		w *= maxH / h
		h = maxH
	}
	xScale = 1
	if c.ReferenceViewportW > 0 {
		xScale = min(1, a.screenW/float32(c.ReferenceViewportW))
	}
	return mgl32.Vec2{a.screenW / 2, a.screenH/2 + 10}, w, h, xScale
}

// drawCarousel draws the cards far to near and records their hit areas.
func (a *App) drawCarousel() {
	n := a.catalog.Len()
	a.cardHits = a.cardHits[:0]
	a.centreCard = rl.Rectangle{}
	a.centreImage = rl.Rectangle{}
	if n == 0 {
		return
	}

	centre, w, h, xScale := a.cardLayout()
	perspective := float32(a.cfg.Carousel.PerspectiveDepth)

	type drawn struct {
		index int
		pl    carousel.Placement
	}
	order := make([]drawn, 0, n)
	for i := 0; i < n; i++ {
		pl := a.sess.Animator.Placement(i)
		if pl.Opacity <= 0.001 {
			continue
		}
		order = append(order, drawn{i, pl})
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].pl.Z < order[j].pl.Z
	})

	index := a.sess.Carousel.Index()
	for _, d := range order {
		q := carousel.Project(d.pl, centre, w, h, perspective, xScale)
		a.cards.Draw(a.catalog.At(d.index), q, d.pl)

		x, y, bw, bh := q.Bounds()
		bounds := rl.NewRectangle(x, y, bw, bh)
		if d.index == index {
			a.cards.DrawInCart(q, d.pl, a.sess.InCart())
			a.centreCard = bounds
			a.centreImage = renderer.ImageBox(q, d.pl)
			continue
		}
		if a.sess.Carousel.Visible(d.index) {
			a.cardHits = append(a.cardHits, ui.CardHit{Index: d.index, Bounds: bounds})
		}
	}
}

// drawUI draws the chrome, the debug overlays and any open modal.
func (a *App) drawUI() {
	sw, sh := int32(a.screenW), int32(a.screenH)
	modal := a.sess.ModalOpen()
	biz := a.cfg.Business

	a.hud.Draw(ui.HUDData{
		Title:        biz.Name,
		CartCount:    a.sess.Cart.TotalItemCount(),
		CartOpen:     a.sess.CartOpen(),
		Interactive:  !modal,
		ScreenWidth:  sw,
		ScreenHeight: sh,
		Links:        footerLinks(biz),
	}, &a.actions)

	a.controls.Draw(ui.CarouselData{
		N:            a.catalog.Len(),
		Index:        a.sess.Carousel.Index(),
		Centre:       a.centreCard,
		Image:        a.centreImage,
		Hits:         a.cardHits,
		Added:        a.sess.Added(),
		Interactive:  !modal,
		ScreenWidth:  sw,
		ScreenHeight: sh,
	}, &a.actions)

	a.drawOverlays()

	if a.sess.CartOpen() {
		a.cartPanel.Draw(ui.CartPanelData{
			Lines:        a.sess.Cart.Lines(),
			Totals:       a.sess.Cart.ComputeTotals(),
			Currency:     a.cfg.Cart.DisplaySymbol,
			ScreenWidth:  sw,
			ScreenHeight: sh,
		}, &a.actions)
	}
	a.gallery.Draw(&a.sess.Gallery, sw, sh, &a.actions)
}

// drawOverlays stacks the enabled debug panels down the left edge.
func (a *App) drawOverlays() {
	y := int32(80)
	if a.overlays.IsEnabled(ui.OverlayHelp) {
		a.help.SetPosition(16, y)
		y = a.help.Draw(a.overlays) + 12
	}
	if a.overlays.IsEnabled(ui.OverlayKinematics) && a.scene != nil {
		k := a.scene.Kin
		rotY, rotZ := k.Rotation()
		starCount := 0
		if a.starField != nil {
			starCount = a.starField.Count()
		}
		halfW, halfH := a.cam.VisibleHalfExtent(a.cam.Distance())
		a.inspector.SetPosition(16, y)
		y = a.inspector.Draw(ui.InspectorData{
			Particles:      a.scene.Field.Len(),
			Stars:          starCount,
			PointerSpeed:   k.PointerSpeed(),
			RotationSpeed:  k.RotationSpeed(),
			TargetRotation: k.TargetRotationSpeed(),
			Glow:           k.Uniforms().Speed,
			FOV:            k.FOV(),
			BaseFOV:        float32(a.cfg.Universe.BaseFOV),
			RotY:           rotY,
			RotZ:           rotZ,
			ViewHalfW:      halfW,
			ViewHalfH:      halfH,
			ShaderValid:    a.universeR.Valid(),
		}) + 12
	}
	if a.overlays.IsEnabled(ui.OverlayPerf) {
		a.perfPanel.SetPosition(16, y)
		a.perfPanel.Draw(a.lastPerf)
	}
	if a.overlays.IsEnabled(ui.OverlayPointer) && a.scene != nil {
		a.drawBoostRing()
	}
}

// drawBoostRing outlines the region of the field the pointer is enlarging,
// projected through the current camera. Segments behind the camera are skipped.
func (a *App) drawBoostRing() {
	ring := a.scene.BoostRing(48)
	colour := rl.Color{R: 96, G: 165, B: 250, A: 200}
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		x0, y0, ok0 := a.cam.WorldToScreen(p)
		x1, y1, ok1 := a.cam.WorldToScreen(q)
		if ok0 && ok1 {
			rl.DrawLineV(rl.NewVector2(x0, y0), rl.NewVector2(x1, y1), colour)
		}
	}
	if sx, sy, ok := a.cam.WorldToScreen(a.scene.BoostCentre()); ok {
		rl.DrawCircleV(rl.NewVector2(sx, sy), 3, rl.White)
	}
}

// footerLinks lists the contact links in footer order. Empty URLs are dropped
// by the HUD.
func footerLinks(biz config.BusinessConfig) []ui.Link {
	return []ui.Link{
		{Label: "WhatsApp " + biz.DisplayNumber, URL: whatsAppLink(biz.WhatsAppNumber)},
		{Label: "Instagram", URL: biz.Instagram},
		{Label: "Google", URL: biz.GoogleBusiness},
		{Label: "Email", URL: biz.Email},
		{Label: "Built by", URL: biz.LinkedIn},
	}
}

// whatsAppLink builds the chat link for a bare international number.
func whatsAppLink(number string) string {
	if number == "" {
		return ""
	}
	return "https://wa.me/" + number
}
