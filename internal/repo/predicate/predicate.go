// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Membership is the predicate function for membership builders.
type Membership func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// NotificationSendLog is the predicate function for notificationsendlog builders.
type NotificationSendLog func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// ScheduledNotification is the predicate function for schedulednotification builders.
type ScheduledNotification func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
