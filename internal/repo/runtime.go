// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/membership"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/notification"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/notificationsendlog"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/organization"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/schedulednotification"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/user"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	membershipMixin := schema.Membership{}.Mixin()
	membershipMixinFields0 := membershipMixin[0].Fields()
	_ = membershipMixinFields0
	membershipMixinFields1 := membershipMixin[1].Fields()
	_ = membershipMixinFields1
	membershipFields := schema.Membership{}.Fields()
	_ = membershipFields
	// membershipDescCreatedAt is the schema descriptor for created_at field.
	membershipDescCreatedAt := membershipMixinFields1[0].Descriptor()
	// membership.DefaultCreatedAt holds the default value on creation for the created_at field.
	membership.DefaultCreatedAt = membershipDescCreatedAt.Default.(func() time.Time)
	// membershipDescID is the schema descriptor for id field.
	membershipDescID := membershipMixinFields0[0].Descriptor()
	// membership.DefaultID holds the default value on creation for the id field.
	membership.DefaultID = membershipDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescIsEmailSent is the schema descriptor for is_email_sent field.
	notificationDescIsEmailSent := notificationFields[6].Descriptor()
	// notification.DefaultIsEmailSent holds the default value on creation for the is_email_sent field.
	notification.DefaultIsEmailSent = notificationDescIsEmailSent.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	notificationsendlogMixin := schema.NotificationSendLog{}.Mixin()
	notificationsendlogMixinFields0 := notificationsendlogMixin[0].Fields()
	_ = notificationsendlogMixinFields0
	notificationsendlogFields := schema.NotificationSendLog{}.Fields()
	_ = notificationsendlogFields
	// notificationsendlogDescTitle is the schema descriptor for title field.
	notificationsendlogDescTitle := notificationsendlogFields[2].Descriptor()
	// notificationsendlog.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notificationsendlog.TitleValidator = notificationsendlogDescTitle.Validators[0].(func(string) error)
	// notificationsendlogDescLink is the schema descriptor for link field.
	notificationsendlogDescLink := notificationsendlogFields[6].Descriptor()
	// notificationsendlog.LinkValidator is a validator for the "link" field. It is called by the builders before save.
	notificationsendlog.LinkValidator = notificationsendlogDescLink.Validators[0].(func(string) error)
	// notificationsendlogDescFailedCount is the schema descriptor for failed_count field.
	notificationsendlogDescFailedCount := notificationsendlogFields[10].Descriptor()
	// notificationsendlog.DefaultFailedCount holds the default value on creation for the failed_count field.
	notificationsendlog.DefaultFailedCount = notificationsendlogDescFailedCount.Default.(int)
	// notificationsendlogDescID is the schema descriptor for id field.
	notificationsendlogDescID := notificationsendlogMixinFields0[0].Descriptor()
	// notificationsendlog.DefaultID holds the default value on creation for the id field.
	notificationsendlog.DefaultID = notificationsendlogDescID.Default.(func() uuid.UUID)
	organizationMixin := schema.Organization{}.Mixin()
	organizationMixinFields0 := organizationMixin[0].Fields()
	_ = organizationMixinFields0
	organizationMixinFields1 := organizationMixin[1].Fields()
	_ = organizationMixinFields1
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationMixinFields1[0].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationMixinFields1[1].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[0].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = organizationDescName.Validators[0].(func(string) error)
	// organizationDescSlug is the schema descriptor for slug field.
	organizationDescSlug := organizationFields[1].Descriptor()
	// organization.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	organization.SlugValidator = organizationDescSlug.Validators[0].(func(string) error)
	// organizationDescID is the schema descriptor for id field.
	organizationDescID := organizationMixinFields0[0].Descriptor()
	// organization.DefaultID holds the default value on creation for the id field.
	organization.DefaultID = organizationDescID.Default.(func() uuid.UUID)
	schedulednotificationMixin := schema.ScheduledNotification{}.Mixin()
	schedulednotificationMixinFields0 := schedulednotificationMixin[0].Fields()
	_ = schedulednotificationMixinFields0
	schedulednotificationMixinFields1 := schedulednotificationMixin[1].Fields()
	_ = schedulednotificationMixinFields1
	schedulednotificationFields := schema.ScheduledNotification{}.Fields()
	_ = schedulednotificationFields
	// schedulednotificationDescCreatedAt is the schema descriptor for created_at field.
	schedulednotificationDescCreatedAt := schedulednotificationMixinFields1[0].Descriptor()
	// schedulednotification.DefaultCreatedAt holds the default value on creation for the created_at field.
	schedulednotification.DefaultCreatedAt = schedulednotificationDescCreatedAt.Default.(func() time.Time)
	// schedulednotificationDescUpdatedAt is the schema descriptor for updated_at field.
	schedulednotificationDescUpdatedAt := schedulednotificationMixinFields1[1].Descriptor()
	// schedulednotification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	schedulednotification.DefaultUpdatedAt = schedulednotificationDescUpdatedAt.Default.(func() time.Time)
	// schedulednotification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	schedulednotification.UpdateDefaultUpdatedAt = schedulednotificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// schedulednotificationDescTitle is the schema descriptor for title field.
	schedulednotificationDescTitle := schedulednotificationFields[4].Descriptor()
	// schedulednotification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	schedulednotification.TitleValidator = schedulednotificationDescTitle.Validators[0].(func(string) error)
	// schedulednotificationDescLink is the schema descriptor for link field.
	schedulednotificationDescLink := schedulednotificationFields[8].Descriptor()
	// schedulednotification.LinkValidator is a validator for the "link" field. It is called by the builders before save.
	schedulednotification.LinkValidator = schedulednotificationDescLink.Validators[0].(func(string) error)
	// schedulednotificationDescID is the schema descriptor for id field.
	schedulednotificationDescID := schedulednotificationMixinFields0[0].Descriptor()
	// schedulednotification.DefaultID holds the default value on creation for the id field.
	schedulednotification.DefaultID = schedulednotificationDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescGlobalRole is the schema descriptor for global_role field.
	userDescGlobalRole := userFields[2].Descriptor()
	// user.DefaultGlobalRole holds the default value on creation for the global_role field.
	user.DefaultGlobalRole = userDescGlobalRole.Default.(string)
	// user.GlobalRoleValidator is a validator for the "global_role" field. It is called by the builders before save.
	user.GlobalRoleValidator = userDescGlobalRole.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[3].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
