package slack

import (
	"fmt"
	"strings"

	"github.com/bnema/pairup/internal/domain"
	"github.com/bnema/pairup/internal/ports"
)

const heading = "Current week pairs:"

type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Block struct {
	Type string      `json:"type"`
	Text *TextObject `json:"text,omitempty"`
}

type postMessageRequest struct {
	Channel string  `json:"channel"`
	Text    string  `json:"text"`
	Blocks  []Block `json:"blocks"`
}

func section(markdown string) Block {
	return Block{Type: "section", Text: &TextObject{Type: "mrkdwn", Text: markdown}}
}

func divider() Block {
	return Block{Type: "divider"}
}

// BuildBlocks lays out an announcement as Block Kit sections.
func BuildBlocks(announcement ports.Announcement, mention string) []Block {
	blocks := []Block{section("*" + heading + "*"), divider()}
	for i, pair := range announcement.Pairs {
		blocks = append(blocks, section(fmt.Sprintf("%d. *%s* & *%s*", i+1, pair.First.DisplayName(), pair.Second.DisplayName())))
	}
	if len(announcement.Unpaired) > 0 {
		blocks = append(blocks, section("_Sitting out: "+joinNames(announcement.Unpaired, "*")+"_"))
	}
	blocks = append(blocks, divider())
	if mention = strings.TrimSpace(mention); mention != "" {
		blocks = append(blocks, section("cc "+mention))
	}

	return blocks
}

// BuildText is the plain-text fallback shown in notifications.
func BuildText(announcement ports.Announcement, mention string) string {
	var b strings.Builder
	b.WriteString(heading)
	for i, pair := range announcement.Pairs {
		fmt.Fprintf(&b, "\n%d. %s & %s", i+1, pair.First.DisplayName(), pair.Second.DisplayName())
	}
	if len(announcement.Unpaired) > 0 {
		b.WriteString("\nSitting out: " + joinNames(announcement.Unpaired, ""))
	}
	if mention = strings.TrimSpace(mention); mention != "" {
		b.WriteString("\ncc " + mention)
	}

	return b.String()
}

func joinNames(members []domain.Member, wrap string) string {
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, wrap+member.DisplayName()+wrap)
	}
	return strings.Join(names, ", ")
}
