package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ContactMessagesTotal counts contact form submissions that were persisted.
	ContactMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "folio_contact_messages_total",
		Help: "Total number of contact messages stored",
	})

	// ContentWritesTotal counts authored content writes by entity.
	ContentWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_content_writes_total",
		Help: "Total number of content records written, by entity",
	}, []string{"entity"})
)
