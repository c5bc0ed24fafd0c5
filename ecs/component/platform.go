package component

// Platform is static level geometry. OneWay platforms only block from above.
type Platform struct {
	OneWay bool
}

var PlatformComponent = NewComponent[Platform]()
