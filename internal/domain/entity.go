package domain

// Entity names a collection whose change is announced to connected clients.
type Entity string

const (
	EntitySchedule Entity = "schedule"
	EntityGroups   Entity = "groups"
	EntityTeachers Entity = "teachers"
	EntityRooms    Entity = "rooms"
	EntitySubjects Entity = "subjects"
	EntityNotice   Entity = "notice"
)
