// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/notificationsendlog"
)

// NotificationSendLog is the model entity for the NotificationSendLog schema.
type NotificationSendLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatorID holds the value of the "creator_id" field.
	CreatorID uuid.UUID `json:"creator_id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Type holds the value of the "type" field.
	Type notificationsendlog.Type `json:"type,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority notificationsendlog.Priority `json:"priority,omitempty"`
	// Link holds the value of the "link" field.
	Link *string `json:"link,omitempty"`
	// TargetType holds the value of the "target_type" field.
	TargetType notificationsendlog.TargetType `json:"target_type,omitempty"`
	// TargetCount holds the value of the "target_count" field.
	TargetCount int `json:"target_count,omitempty"`
	// SentCount holds the value of the "sent_count" field.
	SentCount int `json:"sent_count,omitempty"`
	// FailedCount holds the value of the "failed_count" field.
	FailedCount int `json:"failed_count,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt       time.Time `json:"sent_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationSendLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationsendlog.FieldOrganizationID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case notificationsendlog.FieldTargetCount, notificationsendlog.FieldSentCount, notificationsendlog.FieldFailedCount:
			values[i] = new(sql.NullInt64)
		case notificationsendlog.FieldTitle, notificationsendlog.FieldMessage, notificationsendlog.FieldType, notificationsendlog.FieldPriority, notificationsendlog.FieldLink, notificationsendlog.FieldTargetType:
			values[i] = new(sql.NullString)
		case notificationsendlog.FieldSentAt:
			values[i] = new(sql.NullTime)
		case notificationsendlog.FieldID, notificationsendlog.FieldCreatorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationSendLog fields.
func (_m *NotificationSendLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationsendlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case notificationsendlog.FieldCreatorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field creator_id", values[i])
			} else if value != nil {
				_m.CreatorID = *value
			}
		case notificationsendlog.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = new(uuid.UUID)
				*_m.OrganizationID = *value.S.(*uuid.UUID)
			}
		case notificationsendlog.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case notificationsendlog.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case notificationsendlog.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = notificationsendlog.Type(value.String)
			}
		case notificationsendlog.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = notificationsendlog.Priority(value.String)
			}
		case notificationsendlog.FieldLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field link", values[i])
			} else if value.Valid {
				_m.Link = new(string)
				*_m.Link = value.String
			}
		case notificationsendlog.FieldTargetType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_type", values[i])
			} else if value.Valid {
				_m.TargetType = notificationsendlog.TargetType(value.String)
			}
		case notificationsendlog.FieldTargetCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_count", values[i])
			} else if value.Valid {
				_m.TargetCount = int(value.Int64)
			}
		case notificationsendlog.FieldSentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sent_count", values[i])
			} else if value.Valid {
				_m.SentCount = int(value.Int64)
			}
		case notificationsendlog.FieldFailedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_count", values[i])
			} else if value.Valid {
				_m.FailedCount = int(value.Int64)
			}
		case notificationsendlog.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationSendLog.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationSendLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NotificationSendLog.
// Note that you need to call NotificationSendLog.Unwrap() before calling this method if this NotificationSendLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationSendLog) Update() *NotificationSendLogUpdateOne {
	return NewNotificationSendLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationSendLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationSendLog) Unwrap() *NotificationSendLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: NotificationSendLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationSendLog) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationSendLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("creator_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatorID))
	builder.WriteString(", ")
	if v := _m.OrganizationID; v != nil {
		builder.WriteString("organization_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.Link; v != nil {
		builder.WriteString("link=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("target_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetType))
	builder.WriteString(", ")
	builder.WriteString("target_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetCount))
	builder.WriteString(", ")
	builder.WriteString("sent_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentCount))
	builder.WriteString(", ")
	builder.WriteString("failed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedCount))
	builder.WriteString(", ")
	builder.WriteString("sent_at=")
	builder.WriteString(_m.SentAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationSendLogs is a parsable slice of NotificationSendLog.
type NotificationSendLogs []*NotificationSendLog
