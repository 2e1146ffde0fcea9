package constant

// Session types. The set is closed; pkg/study/module owns the parsing and
// dispatch logic, these are the wire values.
const (
	SessionTypeExamPrep = "exam_prep"
	SessionTypeQA       = "qa"
	SessionTypeHomework = "homework"
)

// Chat message roles as persisted in chat_messages.role.
const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

// Study material types as persisted in study_materials.type.
const (
	MaterialTypeSummary   = "summary"
	MaterialTypeFlashcard = "flashcard"
	MaterialTypeMindmap   = "mindmap"
)

// Event type codes published to the NATS bus.
const (
	EventSessionCreated    = "SESSION_CREATED"
	EventSessionDeleted    = "SESSION_DELETED"
	EventMaterialGenerated = "MATERIAL_GENERATED"
	EventMaterialFailed    = "MATERIAL_FAILED"
	EventCreditsPurchased  = "CREDITS_PURCHASED"
)

// Credit cost of a single AI operation (question or artifact generation).
const AiOperationCreditCost = 1

// Price of one credit in IDR, charged through Midtrans.
const CreditUnitPriceIDR int64 = 1500
