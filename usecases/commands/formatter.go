package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/slack-go/slack"

	"foodeebot/models"
)

// ResponseStyle selects how an in-channel order summary is rendered. Both
// styles consume the same aggregated order data.
type ResponseStyle string

const (
	// ResponseStyleAttachment renders one rich Slack attachment with a field
	// per member.
	ResponseStyleAttachment ResponseStyle = "attachment"
	// ResponseStyleText renders a plain text list, one emphasized member name
	// followed by their item lines.
	ResponseStyleText ResponseStyle = "text"
)

// ParseResponseStyle maps a config string to a ResponseStyle, defaulting to
// the attachment style.
func ParseResponseStyle(value string) ResponseStyle {
	if ResponseStyle(value) == ResponseStyleText {
		return ResponseStyleText
	}
	return ResponseStyleAttachment
}

// FormatOrderResult renders the aggregated order (or its absence) for a date.
func FormatOrderResult(
	date string,
	maybeDetail mo.Option[*models.OrderDetail],
	style ResponseStyle,
) *models.CommandResult {
	if !maybeDetail.IsPresent() {
		return models.NewEphemeralResult(fmt.Sprintf("No orders for %s", date))
	}
	detail := maybeDetail.MustGet()

	if style == ResponseStyleText {
		return formatTextResult(date, detail)
	}
	return formatAttachmentResult(date, detail)
}

func formatAttachmentResult(date string, detail *models.OrderDetail) *models.CommandResult {
	fields := make([]slack.AttachmentField, 0, len(detail.Members))
	for _, member := range detail.Members {
		fields = append(fields, slack.AttachmentField{
			Title: member.DisplayName,
			Value: strings.Join(renderMemberItems(member), "\n"),
			Short: true,
		})
	}

	attachment := slack.Attachment{
		Pretext:    date,
		AuthorName: detail.RestaurantName,
		ThumbURL:   detail.ThumbnailURL,
		Ts:         json.Number(strconv.FormatInt(detail.DeliveredAt.Unix(), 10)),
		Fields:     fields,
	}
	if total := detail.Total(); total.IsPositive() {
		attachment.Footer = fmt.Sprintf("Total $%s", total.StringFixed(2))
	}

	return &models.CommandResult{
		ResponseType: models.ResponseTypeInChannel,
		Attachments:  []slack.Attachment{attachment},
	}
}

func formatTextResult(date string, detail *models.OrderDetail) *models.CommandResult {
	lines := []string{fmt.Sprintf("*%s*", date)}
	for _, member := range detail.Members {
		lines = append(lines, fmt.Sprintf("*%s*", member.DisplayName))
		lines = append(lines, renderMemberItems(member)...)
	}

	return &models.CommandResult{
		ResponseType: models.ResponseTypeInChannel,
		Text:         strings.Join(lines, "\n"),
	}
}

// renderMemberItems flattens a member's line items into display lines:
// the item itself, then one line per special instruction.
func renderMemberItems(member models.OrderMember) []string {
	var lines []string
	for _, item := range member.Items {
		lines = append(lines, renderLineItem(item))
		lines = append(lines, item.SpecialInstructions...)
	}
	return lines
}

// renderLineItem renders "3x Name (mod1,mod2)". The quantity prefix is only
// added for quantities above one.
func renderLineItem(item models.LineItem) string {
	var b strings.Builder
	if item.Quantity > 1 {
		fmt.Fprintf(&b, "%dx ", item.Quantity)
	}
	b.WriteString(item.Name)
	if len(item.Modifiers) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(item.Modifiers, ","))
	}
	return b.String()
}
