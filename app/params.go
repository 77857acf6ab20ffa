package app

import (
	"fmt"

	"github.com/pthm-cable/noble/carousel"
	"github.com/pthm-cable/noble/cart"
	"github.com/pthm-cable/noble/checkout"
	"github.com/pthm-cable/noble/config"
	"github.com/pthm-cable/noble/session"
	"github.com/pthm-cable/noble/stars"
	"github.com/pthm-cable/noble/universe"
)

// addedSeconds is how long "Added!" replaces the add-to-cart label.
const addedSeconds = 0.3

// fieldParams maps the universe section to generator parameters.
func fieldParams(cfg *config.Config) (universe.FieldParams, error) {
	palette, err := universe.ParsePalette(cfg.Universe.Palette)
	if err != nil {
		return universe.FieldParams{}, fmt.Errorf("universe palette: %w", err)
	}
	return universe.FieldParams{
		Count:   cfg.Universe.ParticleCount,
		Radius:  float32(cfg.Universe.Radius),
		SizeMin: float32(cfg.Universe.SizeMin),
		SizeMax: float32(cfg.Universe.SizeMax),
		Palette: palette,
	}, nil
}

// kinematicsParams maps the kinematics section.
func kinematicsParams(cfg *config.Config) universe.KinematicsParams {
	k := cfg.Kinematics
	return universe.KinematicsParams{
		SpeedGain:      float32(k.SpeedGain),
		BaseRotation:   float32(k.BaseRotation),
		SpeedRotation:  float32(k.SpeedRotation),
		RestRotation:   float32(k.RestRotation),
		PointerLerp:    float32(k.PointerLerp),
		RotationLerp:   float32(k.RotationLerp),
		DecayLerp:      float32(k.DecayLerp),
		SecondaryRatio: float32(k.SecondaryRatio),
		BaseFOV:        float32(cfg.Universe.BaseFOV),
		FOVGain:        float32(k.FOVGain),
		FOVLerp:        float32(k.FOVLerp),
		GlowGain:       float32(k.GlowGain),
	}
}

// sceneParams maps the per-point animation settings.
func sceneParams(cfg *config.Config) universe.SceneParams {
	return universe.SceneParams{
		PointerScale: float32(cfg.Universe.PointerScale),
		BreathAmp:    float32(cfg.Universe.BreathAmp),
		BreathFreq:   float32(cfg.Universe.BreathFreq),
		BoostRadius:  float32(cfg.Kinematics.BoostRadius),
		BoostGain:    float32(cfg.Kinematics.BoostGain),
	}
}

// starParams maps the stars section.
func starParams(cfg *config.Config) (stars.Params, error) {
	s := cfg.Stars
	palette, err := stars.ParsePalette(s.Colors)
	if err != nil {
		return stars.Params{}, fmt.Errorf("star colours: %w", err)
	}
	return stars.Params{
		Count:        s.Count,
		RegenSeconds: float32(s.RegenSeconds),
		MinDuration:  float32(s.MinDuration),
		MaxDuration:  float32(s.MaxDuration),
		MinSize:      float32(s.MinSize),
		MaxSize:      float32(s.MaxSize),
		TopFraction:  float32(s.TopFraction),
		Travel:       float32(s.TravelPixels),
		AngleDegrees: float32(s.AngleDegrees),
		FadeFraction: float32(s.FadeFraction),
		Palette:      palette,
	}, nil
}

// checkoutRules maps the form limits.
func checkoutRules(cfg *config.Config) checkout.Rules {
	c := cfg.Checkout
	return checkout.Rules{
		PhonePrefix: c.PhonePrefix,
		PhoneDigits: c.PhoneDigits,
		MaxName:     c.MaxName,
		MaxEmail:    c.MaxEmail,
		MaxAddress:  c.MaxAddress,
	}
}

// sessionOptions maps carousel, cart and checkout settings.
func sessionOptions(cfg *config.Config) session.Options {
	return session.Options{
		InitialIndex:      cfg.Carousel.InitialIndex,
		TransitionSeconds: float32(cfg.Carousel.TransitionSeconds),
		AddedSeconds:      addedSeconds,
		Layout: carousel.NewLayout(
			float32(cfg.Carousel.NarrowBreakpoint),
			float32(cfg.Carousel.WideBreakpoint),
		),
		Pricing: cart.Pricing{
			DeliveryCharge:   cfg.Cart.DeliveryCharge,
			TwoItemPercent:   cfg.Cart.TwoItemPercent,
			ThreeItemPercent: cfg.Cart.ThreeItemPercent,
		},
		Composer: checkout.Composer{
			Endpoint: cfg.Checkout.Endpoint,
			Header:   cfg.Checkout.Header,
			Currency: cfg.Cart.CurrencySymbol,
			Rules:    checkoutRules(cfg),
		},
	}
}
