package notify

import (
	"fmt"

	"github.com/aletkin/carminder/internal/model"
	"github.com/aletkin/carminder/internal/service/urgency"
)

// Payload is the notification rendered for one reminder. It is built once
// per reminder and delivered unchanged to every subscription; the tag lets
// the receiving browser collapse repeats for the same reminder.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
	Tag   string `json:"tag"`
}

// buildPayload renders the user-facing notification for a classified reminder.
func buildPayload(r model.Reminder, v model.Vehicle, cls urgency.Classification, iconURL string) Payload {
	return Payload{
		Title: v.DisplayName(),
		Body:  renderBody(r, cls),
		Icon:  iconURL,
		Tag:   r.ID.String(),
	}
}

func renderBody(r model.Reminder, cls urgency.Classification) string {
	if cls.Kind == urgency.Overdue {
		switch {
		case cls.KmRemaining != nil && *cls.KmRemaining < 0:
			return fmt.Sprintf("%s is overdue by %d km", r.ServiceType, -*cls.KmRemaining)
		case cls.DaysRemaining != nil && *cls.DaysRemaining < 0:
			return fmt.Sprintf("%s is overdue by %d days", r.ServiceType, -*cls.DaysRemaining)
		default:
			return fmt.Sprintf("%s is overdue", r.ServiceType)
		}
	}

	switch {
	case cls.KmRemaining != nil && cls.DaysRemaining != nil:
		return fmt.Sprintf("%s due in %d km or %d days", r.ServiceType, *cls.KmRemaining, *cls.DaysRemaining)
	case cls.KmRemaining != nil:
		return fmt.Sprintf("%s due in %d km", r.ServiceType, *cls.KmRemaining)
	case cls.DaysRemaining != nil:
		return fmt.Sprintf("%s due in %d days", r.ServiceType, *cls.DaysRemaining)
	default:
		return fmt.Sprintf("%s is due soon", r.ServiceType)
	}
}
