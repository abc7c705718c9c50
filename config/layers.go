package config

import "github.com/yohamta/donburi/ecs"

// ECS render layer. Everything draws on one layer in draw-call order.
const Default ecs.LayerID = 0
