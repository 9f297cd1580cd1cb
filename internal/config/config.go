package config

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Will you forgive me?"

	// Card dimensions
	CardMaxWidth = 380
	CardHeight   = 300
	CardMargin   = 16

	// Button dimensions
	YesButtonWidth  = 160
	NoButtonWidth   = 140
	ButtonHeight    = 56
	ButtonGap       = 20
	ButtonRowOffset = 60 // below card center

	// Evasion margins keep the control on screen around the center anchor
	EvasionMarginX = 90
	EvasionMarginY = 120

	// Particle burst
	ParticleCount       = 26
	ParticleDrift       = 180
	ParticleMinDuration = 2.0
	ParticleMaxDuration = 3.2
	ParticleFallExtra   = 120
	ParticleWidth       = 12
	ParticleHeight      = 32

	// Spring stiffness for the evasive control and the celebration popup
	EvasionStiffness = 350
	PopupStiffness   = 180
	PressStiffness   = 400

	// Audio
	SampleRate = 44100
	ChimeRing  = 4096
)
