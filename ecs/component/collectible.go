package component

type Collectible struct {
	Points    int
	Collected bool
}

var CollectibleComponent = NewComponent[Collectible]()
