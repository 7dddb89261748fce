// Package ecs provides ECS adapters for swing's interaction event system.
//
// The primary adapter is [NewDonburiStore], which bridges swing interaction
// events (hover, grab, release, teleport) into a [Donburi] world as typed
// events. Subscribe to [InteractionEventType] in your ECS systems to receive
// them. The store also mirrors each touched swing entity as a Donburi entity
// carrying an [Interaction] component, so systems can query who holds what.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
