package component

// BounceStats counts resolved bounces on the player.
type BounceStats struct {
	Count     int
	LastSpeed float64
}

var BounceStatsComponent = NewComponent[BounceStats]()
