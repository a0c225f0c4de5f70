package tui

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/kittuduck/oraclefed/internal/persona"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// formatINR renders a rupee amount with the currency's own grouping
// and symbol.
func formatINR(d decimal.Decimal) string {
	minor := d.Mul(hundred).Round(0).IntPart()
	return money.New(minor, money.INR).Display()
}

// formatINRCompact drops the paise when the amount is whole rupees.
func formatINRCompact(d decimal.Decimal) string {
	return strings.TrimSuffix(formatINR(d), ".00")
}

func formatChangePercent(p float64) string {
	if p >= 0 {
		return fmt.Sprintf("▲ %.1f%%", p)
	}
	return fmt.Sprintf("▼ %.1f%%", -p)
}

// goalProgress returns the filled cell count for a fixed-width bar.
func goalProgress(current, target decimal.Decimal, width int) int {
	if width <= 0 || target.IsZero() || !current.IsPositive() {
		return 0
	}
	filled := int(current.Mul(decimal.NewFromInt(int64(width))).Div(target).IntPart())
	if filled > width {
		filled = width
	}
	return filled
}

func progressBar(current, target decimal.Decimal, width int) string {
	filled := goalProgress(current, target, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// sparkline renders a tiny trend from a value series.
func sparkline(points []decimal.Decimal) string {
	if len(points) == 0 {
		return ""
	}
	ramp := []rune("▁▂▃▄▅▆▇█")
	max := points[0]
	for _, p := range points[1:] {
		if p.GreaterThan(max) {
			max = p
		}
	}
	if max.IsZero() {
		return strings.Repeat("▁", len(points))
	}
	var sb strings.Builder
	steps := decimal.NewFromInt(int64(len(ramp) - 1))
	for _, p := range points {
		idx := int(p.Mul(steps).Div(max).Round(0).IntPart())
		if idx < 0 {
			idx = 0
		}
		if idx >= len(ramp) {
			idx = len(ramp) - 1
		}
		sb.WriteRune(ramp[idx])
	}
	return sb.String()
}

// iconGlyph resolves catalog icon identifiers to terminal glyphs. The
// catalog itself never stores renderable values.
func iconGlyph(i persona.Icon) string {
	switch i {
	case persona.IconHome:
		return "⌂"
	case persona.IconTravel:
		return "✈"
	case persona.IconEducation:
		return "🎓"
	case persona.IconRetirement:
		return "☂"
	case persona.IconCar:
		return "🚗"
	case persona.IconShield:
		return "🛡"
	case persona.IconBolt:
		return "⚡"
	case persona.IconWifi:
		return "📶"
	case persona.IconCard:
		return "💳"
	case persona.IconHealth:
		return "✚"
	case persona.IconMusic:
		return "♪"
	case persona.IconBusiness:
		return "🏦"
	case persona.IconGift:
		return "🎁"
	case persona.IconPhone:
		return "📱"
	default:
		return "•"
	}
}

func goalStatusLabel(s persona.GoalStatus) string {
	switch s {
	case persona.GoalAtRisk:
		return "AT RISK"
	case persona.GoalRebalanced:
		return "REBALANCED"
	default:
		return "ON TRACK"
	}
}
