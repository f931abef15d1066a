// Code generated by ent, DO NOT EDIT.

package notificationsendlog

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the notificationsendlog type in the database.
	Label = "notification_send_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatorID holds the string denoting the creator_id field in the database.
	FieldCreatorID = "creator_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldLink holds the string denoting the link field in the database.
	FieldLink = "link"
	// FieldTargetType holds the string denoting the target_type field in the database.
	FieldTargetType = "target_type"
	// FieldTargetCount holds the string denoting the target_count field in the database.
	FieldTargetCount = "target_count"
	// FieldSentCount holds the string denoting the sent_count field in the database.
	FieldSentCount = "sent_count"
	// FieldFailedCount holds the string denoting the failed_count field in the database.
	FieldFailedCount = "failed_count"
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// Table holds the table name of the notificationsendlog in the database.
	Table = "notification_send_logs"
)

// Columns holds all SQL columns for notificationsendlog fields.
var Columns = []string{
	FieldID,
	FieldCreatorID,
	FieldOrganizationID,
	FieldTitle,
	FieldMessage,
	FieldType,
	FieldPriority,
	FieldLink,
	FieldTargetType,
	FieldTargetCount,
	FieldSentCount,
	FieldFailedCount,
	FieldSentAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// LinkValidator is a validator for the "link" field. It is called by the builders before save.
	LinkValidator func(string) error
	// DefaultFailedCount holds the default value on creation for the "failed_count" field.
	DefaultFailedCount int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeActivity Type = "activity"
	TypeSystem   Type = "system"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeActivity, TypeSystem:
		return nil
	default:
		return fmt.Errorf("notificationsendlog: invalid enum value for type field: %q", _type)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityNormal is the default value of the Priority enum.
const DefaultPriority = PriorityNormal

// Priority values.
const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityNormal, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return fmt.Errorf("notificationsendlog: invalid enum value for priority field: %q", pr)
	}
}

// TargetType defines the type for the "target_type" enum field.
type TargetType string

// TargetType values.
const (
	TargetTypeUser         TargetType = "user"
	TargetTypeOrganization TargetType = "organization"
	TargetTypeRole         TargetType = "role"
	TargetTypeMultiOrg     TargetType = "multi_org"
	TargetTypeAll          TargetType = "all"
)

func (tt TargetType) String() string {
	return string(tt)
}

// TargetTypeValidator is a validator for the "target_type" field enum values. It is called by the builders before save.
func TargetTypeValidator(tt TargetType) error {
	switch tt {
	case TargetTypeUser, TargetTypeOrganization, TargetTypeRole, TargetTypeMultiOrg, TargetTypeAll:
		return nil
	default:
		return fmt.Errorf("notificationsendlog: invalid enum value for target_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the NotificationSendLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatorID orders the results by the creator_id field.
func ByCreatorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatorID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByLink orders the results by the link field.
func ByLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLink, opts...).ToFunc()
}

// ByTargetType orders the results by the target_type field.
func ByTargetType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetType, opts...).ToFunc()
}

// ByTargetCount orders the results by the target_count field.
func ByTargetCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetCount, opts...).ToFunc()
}

// BySentCount orders the results by the sent_count field.
func BySentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentCount, opts...).ToFunc()
}

// ByFailedCount orders the results by the failed_count field.
func ByFailedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedCount, opts...).ToFunc()
}

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}
