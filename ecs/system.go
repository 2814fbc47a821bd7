package ecs

// System is one step of a frame. Systems are plain structs: Query and Singleton
// fields are wired by the Scheduler on Register, any other fields are free to
// hold state that survives between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
