// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MembershipsColumns holds the columns for the "memberships" table.
	MembershipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"viewer", "gestor", "secretario"}, Default: "viewer"},
	}
	// MembershipsTable holds the schema information for the "memberships" table.
	MembershipsTable = &schema.Table{
		Name:       "memberships",
		Columns:    MembershipsColumns,
		PrimaryKey: []*schema.Column{MembershipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "membership_user_id_organization_id",
				Unique:  true,
				Columns: []*schema.Column{MembershipsColumns[2], MembershipsColumns[3]},
			},
			{
				Name:    "membership_organization_id_role",
				Unique:  false,
				Columns: []*schema.Column{MembershipsColumns[3], MembershipsColumns[4]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"activity", "system"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "data", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "is_email_sent", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// NotificationSendLogsColumns holds the columns for the "notification_send_logs" table.
	NotificationSendLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "creator_id", Type: field.TypeUUID},
		{Name: "organization_id", Type: field.TypeUUID, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"activity", "system"}},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"normal", "high", "urgent"}, Default: "normal"},
		{Name: "link", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "target_type", Type: field.TypeEnum, Enums: []string{"user", "organization", "role", "multi_org", "all"}},
		{Name: "target_count", Type: field.TypeInt},
		{Name: "sent_count", Type: field.TypeInt},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "sent_at", Type: field.TypeTime},
	}
	// NotificationSendLogsTable holds the schema information for the "notification_send_logs" table.
	NotificationSendLogsTable = &schema.Table{
		Name:       "notification_send_logs",
		Columns:    NotificationSendLogsColumns,
		PrimaryKey: []*schema.Column{NotificationSendLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationsendlog_creator_id_sent_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationSendLogsColumns[1], NotificationSendLogsColumns[12]},
			},
			{
				Name:    "notificationsendlog_organization_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationSendLogsColumns[2]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
	}
	// ScheduledNotificationsColumns holds the columns for the "scheduled_notifications" table.
	ScheduledNotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "creator_id", Type: field.TypeUUID},
		{Name: "organization_id", Type: field.TypeUUID, Nullable: true},
		{Name: "target_type", Type: field.TypeEnum, Enums: []string{"user", "organization", "role", "multi_org", "all"}},
		{Name: "target_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"activity", "system"}},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"normal", "high", "urgent"}, Default: "normal"},
		{Name: "link", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "scheduled_for", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "sent", "cancelled", "failed"}, Default: "pending"},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
	}
	// ScheduledNotificationsTable holds the schema information for the "scheduled_notifications" table.
	ScheduledNotificationsTable = &schema.Table{
		Name:       "scheduled_notifications",
		Columns:    ScheduledNotificationsColumns,
		PrimaryKey: []*schema.Column{ScheduledNotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schedulednotification_status_scheduled_for",
				Unique:  false,
				Columns: []*schema.Column{ScheduledNotificationsColumns[13], ScheduledNotificationsColumns[12]},
			},
			{
				Name:    "schedulednotification_creator_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduledNotificationsColumns[3]},
			},
			{
				Name:    "schedulednotification_organization_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduledNotificationsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "global_role", Type: field.TypeString, Size: 32, Default: "user"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_is_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MembershipsTable,
		NotificationsTable,
		NotificationSendLogsTable,
		OrganizationsTable,
		ScheduledNotificationsTable,
		UsersTable,
	}
)

func init() {
}
