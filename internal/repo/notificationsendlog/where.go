// Code generated by ent, DO NOT EDIT.

package notificationsendlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLTE(FieldID, id))
}

// CreatorID applies equality check predicate on the "creator_id" field. It's identical to CreatorIDEQ.
func CreatorID(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldCreatorID, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldOrganizationID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldTitle, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldMessage, v))
}

// Link applies equality check predicate on the "link" field. It's identical to LinkEQ.
func Link(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldLink, v))
}

// TargetCount applies equality check predicate on the "target_count" field. It's identical to TargetCountEQ.
func TargetCount(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldTargetCount, v))
}

// SentCount applies equality check predicate on the "sent_count" field. It's identical to SentCountEQ.
func SentCount(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldSentCount, v))
}

// FailedCount applies equality check predicate on the "failed_count" field. It's identical to FailedCountEQ.
func FailedCount(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldFailedCount, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldSentAt, v))
}

// CreatorIDEQ applies the EQ predicate on the "creator_id" field.
func CreatorIDEQ(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldCreatorID, v))
}

// CreatorIDNEQ applies the NEQ predicate on the "creator_id" field.
func CreatorIDNEQ(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldCreatorID, v))
}

// CreatorIDIn applies the In predicate on the "creator_id" field.
func CreatorIDIn(vs ...uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldCreatorID, vs...))
}

// CreatorIDNotIn applies the NotIn predicate on the "creator_id" field.
func CreatorIDNotIn(vs ...uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldCreatorID, vs...))
}

// CreatorIDGT applies the GT predicate on the "creator_id" field.
func CreatorIDGT(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGT(FieldCreatorID, v))
}

// CreatorIDGTE applies the GTE predicate on the "creator_id" field.
func CreatorIDGTE(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGTE(FieldCreatorID, v))
}

// CreatorIDLT applies the LT predicate on the "creator_id" field.
func CreatorIDLT(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLT(FieldCreatorID, v))
}

// CreatorIDLTE applies the LTE predicate on the "creator_id" field.
func CreatorIDLTE(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLTE(FieldCreatorID, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v uuid.UUID) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDIsNil applies the IsNil predicate on the "organization_id" field.
func OrganizationIDIsNil() predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIsNull(FieldOrganizationID))
}

// OrganizationIDNotNil applies the NotNil predicate on the "organization_id" field.
func OrganizationIDNotNil() predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotNull(FieldOrganizationID))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldContainsFold(FieldTitle, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldContainsFold(FieldMessage, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldType, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldPriority, vs...))
}

// LinkEQ applies the EQ predicate on the "link" field.
func LinkEQ(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldLink, v))
}

// LinkNEQ applies the NEQ predicate on the "link" field.
func LinkNEQ(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldLink, v))
}

// LinkIn applies the In predicate on the "link" field.
func LinkIn(vs ...string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldLink, vs...))
}

// LinkNotIn applies the NotIn predicate on the "link" field.
func LinkNotIn(vs ...string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldLink, vs...))
}

// LinkGT applies the GT predicate on the "link" field.
func LinkGT(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGT(FieldLink, v))
}

// LinkGTE applies the GTE predicate on the "link" field.
func LinkGTE(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGTE(FieldLink, v))
}

// LinkLT applies the LT predicate on the "link" field.
func LinkLT(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLT(FieldLink, v))
}

// LinkLTE applies the LTE predicate on the "link" field.
func LinkLTE(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLTE(FieldLink, v))
}

// LinkContains applies the Contains predicate on the "link" field.
func LinkContains(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldContains(FieldLink, v))
}

// LinkHasPrefix applies the HasPrefix predicate on the "link" field.
func LinkHasPrefix(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldHasPrefix(FieldLink, v))
}

// LinkHasSuffix applies the HasSuffix predicate on the "link" field.
func LinkHasSuffix(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldHasSuffix(FieldLink, v))
}

// LinkIsNil applies the IsNil predicate on the "link" field.
func LinkIsNil() predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIsNull(FieldLink))
}

// LinkNotNil applies the NotNil predicate on the "link" field.
func LinkNotNil() predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotNull(FieldLink))
}

// LinkEqualFold applies the EqualFold predicate on the "link" field.
func LinkEqualFold(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEqualFold(FieldLink, v))
}

// LinkContainsFold applies the ContainsFold predicate on the "link" field.
func LinkContainsFold(v string) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldContainsFold(FieldLink, v))
}

// TargetTypeEQ applies the EQ predicate on the "target_type" field.
func TargetTypeEQ(v TargetType) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldTargetType, v))
}

// TargetTypeNEQ applies the NEQ predicate on the "target_type" field.
func TargetTypeNEQ(v TargetType) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldTargetType, v))
}

// TargetTypeIn applies the In predicate on the "target_type" field.
func TargetTypeIn(vs ...TargetType) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldTargetType, vs...))
}

// TargetTypeNotIn applies the NotIn predicate on the "target_type" field.
func TargetTypeNotIn(vs ...TargetType) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldTargetType, vs...))
}

// TargetCountEQ applies the EQ predicate on the "target_count" field.
func TargetCountEQ(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldTargetCount, v))
}

// TargetCountNEQ applies the NEQ predicate on the "target_count" field.
func TargetCountNEQ(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldTargetCount, v))
}

// TargetCountIn applies the In predicate on the "target_count" field.
func TargetCountIn(vs ...int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldTargetCount, vs...))
}

// TargetCountNotIn applies the NotIn predicate on the "target_count" field.
func TargetCountNotIn(vs ...int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldTargetCount, vs...))
}

// TargetCountGT applies the GT predicate on the "target_count" field.
func TargetCountGT(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGT(FieldTargetCount, v))
}

// TargetCountGTE applies the GTE predicate on the "target_count" field.
func TargetCountGTE(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGTE(FieldTargetCount, v))
}

// TargetCountLT applies the LT predicate on the "target_count" field.
func TargetCountLT(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLT(FieldTargetCount, v))
}

// TargetCountLTE applies the LTE predicate on the "target_count" field.
func TargetCountLTE(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLTE(FieldTargetCount, v))
}

// SentCountEQ applies the EQ predicate on the "sent_count" field.
func SentCountEQ(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldSentCount, v))
}

// SentCountNEQ applies the NEQ predicate on the "sent_count" field.
func SentCountNEQ(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldSentCount, v))
}

// SentCountIn applies the In predicate on the "sent_count" field.
func SentCountIn(vs ...int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldSentCount, vs...))
}

// SentCountNotIn applies the NotIn predicate on the "sent_count" field.
func SentCountNotIn(vs ...int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldSentCount, vs...))
}

// SentCountGT applies the GT predicate on the "sent_count" field.
func SentCountGT(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGT(FieldSentCount, v))
}

// SentCountGTE applies the GTE predicate on the "sent_count" field.
func SentCountGTE(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGTE(FieldSentCount, v))
}

// SentCountLT applies the LT predicate on the "sent_count" field.
func SentCountLT(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLT(FieldSentCount, v))
}

// SentCountLTE applies the LTE predicate on the "sent_count" field.
func SentCountLTE(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLTE(FieldSentCount, v))
}

// FailedCountEQ applies the EQ predicate on the "failed_count" field.
func FailedCountEQ(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldFailedCount, v))
}

// FailedCountNEQ applies the NEQ predicate on the "failed_count" field.
func FailedCountNEQ(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldFailedCount, v))
}

// FailedCountIn applies the In predicate on the "failed_count" field.
func FailedCountIn(vs ...int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldFailedCount, vs...))
}

// FailedCountNotIn applies the NotIn predicate on the "failed_count" field.
func FailedCountNotIn(vs ...int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldFailedCount, vs...))
}

// FailedCountGT applies the GT predicate on the "failed_count" field.
func FailedCountGT(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGT(FieldFailedCount, v))
}

// FailedCountGTE applies the GTE predicate on the "failed_count" field.
func FailedCountGTE(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGTE(FieldFailedCount, v))
}

// FailedCountLT applies the LT predicate on the "failed_count" field.
func FailedCountLT(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLT(FieldFailedCount, v))
}

// FailedCountLTE applies the LTE predicate on the "failed_count" field.
func FailedCountLTE(v int) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLTE(FieldFailedCount, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.FieldLTE(FieldSentAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationSendLog) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationSendLog) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationSendLog) predicate.NotificationSendLog {
	return predicate.NotificationSendLog(sql.NotPredicates(p))
}
