package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated counts catalog entries created through the API.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cms_products_created_total",
		Help: "The total number of products created",
	})

	// ProductsDeleted counts catalog entries removed through the API.
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cms_products_deleted_total",
		Help: "The total number of products deleted",
	})

	// ContactMessagesStored counts stored contact submissions.
	ContactMessagesStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cms_contact_messages_stored_total",
		Help: "The total number of contact messages stored",
	})

	// ContactEmailsSent counts contact notifications actually relayed.
	ContactEmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cms_contact_emails_sent_total",
		Help: "The total number of contact notification emails sent",
	})
)
