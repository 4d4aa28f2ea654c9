package timeline

// label is presentation metadata for a timeline step. The tables are
// static display plumbing; derivation logic never branches on them.
type label struct {
	Title string
	Icon  string
}

var orderLabels = map[string]label{
	"confirmed":        {Title: "Order Confirmed", Icon: "check-circle"},
	"processing":       {Title: "Processing", Icon: "package"},
	"shipped":          {Title: "Shipped", Icon: "truck"},
	"in_transit":       {Title: "In Transit", Icon: "map"},
	"out_for_delivery": {Title: "Out for Delivery", Icon: "navigation"},
	"delivered":        {Title: "Delivered", Icon: "home"},

	"cancelled":          {Title: "Cancelled", Icon: "x-circle"},
	"refunded":           {Title: "Refunded", Icon: "credit-card"},
	"return_requested":   {Title: "Return Requested", Icon: "corner-up-left"},
	"return_in_progress": {Title: "Return in Progress", Icon: "repeat"},
	"returned":           {Title: "Returned", Icon: "archive"},
}

var returnLabels = map[string]label{
	"pending":    {Title: "Return Requested", Icon: "clock"},
	"approved":   {Title: "Return Approved", Icon: "check-circle"},
	"shipped":    {Title: "Return Shipped", Icon: "truck"},
	"received":   {Title: "Items Received", Icon: "inbox"},
	"inspecting": {Title: "Inspecting", Icon: "search"},
	"refunded":   {Title: "Refunded", Icon: "credit-card"},
	"exchanged":  {Title: "Exchanged", Icon: "refresh-cw"},
	"rejected":   {Title: "Return Rejected", Icon: "x-circle"},
}

func labelFor(table map[string]label, status string) label {
	if l, ok := table[status]; ok {
		return l
	}
	return label{Title: status}
}
