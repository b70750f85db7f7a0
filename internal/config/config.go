// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800

	CellSize   = 40.0
	GridRows   = 15
	GridCols   = 20
	UIPanelX   = GridCols * CellSize // справа от игрового поля начинается панель
	MaxDeltaTime = 0.06

	StartingHealth = 20
	StartingMoney  = 650

	MaxUpgradeLevel       = 3
	UpgradeCostMultiplier = 1.5
	UpgradeDamageFactor   = 1.5
	UpgradeRangeFactor    = 1.1
	UpgradeFireRateFactor = 1.2
	SellRefundFactor      = 0.7

	// Масштабирование врагов по номеру волны
	WaveHealthScaling = 0.15
	WaveRewardScaling = 0.10

	DefaultSpawnInterval = 0.5 // секунд между появлением врагов в волне

	ProjectileRadius    = 4.0  // пиксели
	ProjectileHitRadius = 8.0  // радиус засчитывания попадания
	ChainMaxHopDistance = 150.0
	ChainFlashDuration  = 0.15

	HealthBarHeight = 4.0

	ClickCooldown = 300 // миллисекунды
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GrassColor      = color.RGBA{34, 139, 34, 255}
	PathColor       = color.RGBA{101, 67, 33, 255}
	StartColor      = color.RGBA{0, 200, 0, 255}
	EndColor        = color.RGBA{200, 0, 0, 255}
	GridLineColor   = color.RGBA{64, 64, 64, 255}

	OverlayColor     = color.RGBA{0, 0, 0, 128}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	PanelColor       = color.RGBA{40, 40, 55, 255}
	ButtonColor      = color.RGBA{70, 100, 120, 220}
	ButtonHoverColor = color.RGBA{90, 130, 160, 220}

	TowerStrokeColor   = color.RGBA{255, 255, 255, 255}
	RangeCircleColor   = color.RGBA{255, 255, 255, 60}
	BuffCircleColor    = color.RGBA{255, 215, 0, 60}
	HealthBarBackColor = color.RGBA{200, 40, 40, 255}
	HealthBarFillColor = color.RGBA{40, 200, 40, 255}
	ShieldBarColor     = color.RGBA{80, 160, 255, 255}
	FreezeTintColor    = color.RGBA{150, 220, 255, 255}
	BeamColor          = color.RGBA{0, 255, 255, 255}
	ChainColor         = color.RGBA{120, 200, 255, 255}
)
