package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalSignups      = "total_signups"
	NameTotalLogins       = "total_logins"
	NameTotalCreatedNotes = "total_created_notes"
	NameTotalUpdatedNotes = "total_updated_notes"
	NameTotalDeletedNotes = "total_deleted_notes"
)

var TotalSignups = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalSignups,
		Help:      "Total signups",
		Namespace: Namespace,
	},
)

var TotalLogins = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalLogins,
		Help:      "Total successful logins",
		Namespace: Namespace,
	},
)

var TotalCreatedNotes = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalCreatedNotes,
		Help:      "Total created notes",
		Namespace: Namespace,
	},
)

var TotalUpdatedNotes = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalUpdatedNotes,
		Help:      "Total updated notes",
		Namespace: Namespace,
	},
)

var TotalDeletedNotes = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalDeletedNotes,
		Help:      "Total deleted notes",
		Namespace: Namespace,
	},
)
