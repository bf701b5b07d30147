// Package ecs provides ECS adapters for touchkit's swipe events.
//
// The primary adapter is [NewDonburiSink], which bridges dispatched swipes
// (delete and copy) into a [Donburi] world as typed events. Subscribe to
// [SwipeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	recognizer.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
