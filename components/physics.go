package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround *resolv.Object // the object stood on, nil while airborne

	// Set when standing on a moving platform so the rider follows it.
	CarrierDX float64
	CarrierDY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
