package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/starlock/shared/save"
)

// CollectibleData marks a key or star pickup. Which one is in Kind; the
// derived ID ties the pickup to its persistent collected flag.
type CollectibleData struct {
	Kind save.Kind
	ID   save.EntityID
}

var Collectible = donburi.NewComponentType[CollectibleData]()
