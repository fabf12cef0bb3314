package export

import (
	"fmt"
	"strconv"

	"github.com/abhisek/lessonforge/internal/lessonplan"
	"github.com/abhisek/lessonforge/internal/resources"
)

// BlockKind discriminates layout blocks.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockMeta
	BlockBullets
	BlockNumbered
	BlockLinks
)

// Pair is one labelled metadata row.
type Pair struct {
	Label string
	Value string
}

// Block is one element of the linear layout. Which fields are meaningful
// depends on Kind: Text for headings and paragraphs, Items for lists,
// Pairs for metadata, Links for resource listings.
type Block struct {
	Kind  BlockKind
	Level int
	Text  string
	Items []string
	Pairs []Pair
	Links []resources.Link
}

// Layout is the format-independent document structure both serializers
// consume. Building it is pure; rendering never reaches back into the plan.
type Layout struct {
	Title  string
	Blocks []Block
}

// buildLayout flattens a plan into the shared linear layout: title, meta,
// then per-session heading, objectives, activities and worksheet, and the
// suggested resources last.
func buildLayout(plan *lessonplan.LessonPlan) Layout {
	req := plan.Request
	l := Layout{Title: plan.Title}

	l.Blocks = append(l.Blocks, Block{Kind: BlockMeta, Pairs: []Pair{
		{Label: "Subject", Value: req.Subject},
		{Label: "Class", Value: req.GradeLevel},
		{Label: "Topic", Value: req.Topic},
		{Label: "Sessions", Value: strconv.Itoa(req.SessionCount)},
		{Label: "Session Duration", Value: fmt.Sprintf("%d minutes", req.SessionDurationMinutes)},
		{Label: "Total Duration", Value: fmt.Sprintf("%d minutes", req.SessionCount*req.SessionDurationMinutes)},
		{Label: "Created", Value: plan.CreatedAt.Format("02 January 2006")},
	}})

	for _, s := range plan.Sessions {
		heading := fmt.Sprintf("Session %d", s.Index)
		if s.Title != "" {
			heading = fmt.Sprintf("Session %d: %s", s.Index, s.Title)
		}
		l.Blocks = append(l.Blocks, Block{Kind: BlockHeading, Level: 2, Text: heading})

		if len(s.Objectives) > 0 {
			l.Blocks = append(l.Blocks,
				Block{Kind: BlockHeading, Level: 3, Text: "Learning Objectives"},
				Block{Kind: BlockBullets, Items: append([]string(nil), s.Objectives...)},
			)
		}

		if len(s.Activities) > 0 {
			items := make([]string, 0, len(s.Activities))
			for _, a := range s.Activities {
				items = append(items, activityLine(a))
			}
			l.Blocks = append(l.Blocks,
				Block{Kind: BlockHeading, Level: 3, Text: "Activities"},
				Block{Kind: BlockBullets, Items: items},
			)
		}

		if s.Worksheet != nil && len(s.Worksheet.Questions) > 0 {
			prompts := make([]string, 0, len(s.Worksheet.Questions))
			for _, q := range s.Worksheet.Questions {
				prompts = append(prompts, q.Prompt)
			}
			l.Blocks = append(l.Blocks,
				Block{Kind: BlockHeading, Level: 3, Text: "Worksheet"},
				Block{Kind: BlockNumbered, Items: prompts},
			)
			if hints := answerKey(s.Worksheet.Questions); len(hints) > 0 {
				l.Blocks = append(l.Blocks,
					Block{Kind: BlockParagraph, Text: "Answer key:"},
					Block{Kind: BlockBullets, Items: hints},
				)
			}
		}
	}

	set := resources.Suggest(req.Topic, req.Subject, req.GradeLevel)
	l.Blocks = append(l.Blocks,
		Block{Kind: BlockHeading, Level: 2, Text: "Suggested Resources"},
		Block{Kind: BlockHeading, Level: 3, Text: "Videos"},
		Block{Kind: BlockLinks, Links: set.Videos},
		Block{Kind: BlockHeading, Level: 3, Text: "Web"},
		Block{Kind: BlockLinks, Links: set.Web},
	)

	return l
}

func activityLine(a lessonplan.Activity) string {
	switch {
	case a.EstimatedMinutes > 0 && a.Description != "":
		return fmt.Sprintf("%s (%d min): %s", a.Title, a.EstimatedMinutes, a.Description)
	case a.EstimatedMinutes > 0:
		return fmt.Sprintf("%s (%d min)", a.Title, a.EstimatedMinutes)
	case a.Description != "":
		return fmt.Sprintf("%s: %s", a.Title, a.Description)
	default:
		return a.Title
	}
}

func answerKey(questions []lessonplan.Question) []string {
	var hints []string
	for i, q := range questions {
		if q.AnswerKeyHint != "" {
			hints = append(hints, fmt.Sprintf("Q%d: %s", i+1, q.AnswerKeyHint))
		}
	}
	return hints
}
