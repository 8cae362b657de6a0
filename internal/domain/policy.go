package domain

// Action is an operation subject to the authorization policy
type Action string

const (
	ActionCreateBooking       Action = "booking:create"
	ActionCreateBookingStaff  Action = "booking:create_staff"
	ActionCancelOwnBooking    Action = "booking:cancel_own"
	ActionUpdateBookingStatus Action = "booking:update_status"
	ActionViewAnyBooking      Action = "booking:view_any"

	ActionManageFields  Action = "field:manage"
	ActionGenerateSlots Action = "slot:generate"
	ActionEditSlot      Action = "slot:edit"

	ActionCreateReview Action = "review:create"
	ActionDeleteReview Action = "review:delete"
)

// policy is the single authorization table. Every service and usecase
// entry point consults Allowed instead of scattering role conditionals.
var policy = map[Role]map[Action]bool{
	RoleCustomer: {
		ActionCreateBooking:    true,
		ActionCancelOwnBooking: true,
		ActionCreateReview:     true,
	},
	RoleStaff: {
		ActionCreateBookingStaff:  true,
		ActionUpdateBookingStatus: true,
		ActionViewAnyBooking:      true,
		ActionDeleteReview:        true,
	},
	RoleAdmin: {
		ActionManageFields:   true,
		ActionGenerateSlots:  true,
		ActionEditSlot:       true,
		ActionViewAnyBooking: true,
	},
}

// Allowed reports whether the role may perform the action
func Allowed(role Role, action Action) bool {
	return policy[role][action]
}
