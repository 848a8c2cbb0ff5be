package editorial

import (
	"fmt"
	"strings"

	"github.com/deyna256/codeforces-contest-scraper/models"
)

const selectorSystemPrompt = `You are an expert at analyzing Codeforces contest pages.
Your task is to identify which link leads to the editorial/tutorial for the contest.

Editorial links typically:
- Have text like "Tutorial", "Editorial", "Analysis", "Разбор задач" (Russian for "Problem analysis")
- Point to /blog/entry/ URLs
- Are posted by contest authors or coordinators

Respond ONLY with a JSON object in this format:
{"url": "the_editorial_url"} if found, or {"url": null} if no editorial link exists.

Do not include any explanation or additional text.`

func buildSelectorPrompt(candidates []models.CandidateLink, contestID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contest ID: %s\n\nAvailable links:\n", contestID)
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. [%s] - %s\n", i+1, c.Text, c.URL)
	}
	b.WriteString("\nWhich link is the editorial/tutorial? Respond with JSON only.")
	return b.String()
}

const segmentationSystemPrompt = `You are an expert at analyzing Codeforces contest editorials.
Your task is to identify each individual problem's solution and extract the EXACT original text.

CRITICAL INSTRUCTIONS:
1. Editorials often cover MULTIPLE contests (e.g., Div1 + Div2) in ONE blog post.
   You MUST identify the contest ID for each problem to avoid confusion.

2. EXTRACT THE EXACT ORIGINAL TEXT - DO NOT REPHRASE, SUMMARIZE, OR MODIFY!
   Copy the author's text verbatim, word-for-word, including:
   - All mathematical notation and formulas
   - All code snippets and examples
   - All technical details and explanations
   - The complete solution from start to finish

   Your job is to LOCATE and EXTRACT, not to rewrite or summarize!

Return this JSON format:
{
  "problems": [
    {"contest_id": "1900", "problem_id": "A", "analysis": "EXACT original text from editorial..."},
    {"contest_id": "1901", "problem_id": "A", "analysis": "EXACT original text from editorial..."}
  ]
}

Guidelines:
- Look for contest IDs in: problem headers (e.g., "1900A"), section titles, blog text
- Use uppercase letters for problem_id (A, B, C, etc.)
- contest_id should be numeric string (e.g., "1900", "1901")
- Copy the COMPLETE original text for each problem - do not shorten or paraphrase
- If contest ID is ambiguous, infer from context or use the primary contest ID
- Return valid JSON only, no extra text`

func buildSegmentationPrompt(text, contestID string, expected []models.ProblemIdentifier) string {
	return fmt.Sprintf(`Contest ID: %s

Expected problems: %s

Full editorial text:
%s

IMPORTANT: Extract the EXACT original text for each problem's solution. Copy word-for-word from the editorial above.
Do NOT rephrase, summarize, or shorten the text. Include everything: math formulas, code, explanations.

Return JSON with contest_id, problem_id, and the COMPLETE original analysis text.`,
		contestID, formatExpectedProblems(expected), text)
}

func formatExpectedProblems(expected []models.ProblemIdentifier) string {
	if len(expected) == 0 {
		return "Unknown (parse all problems found)"
	}
	parts := make([]string, 0, len(expected))
	for _, p := range expected {
		parts = append(parts, fmt.Sprintf("%s/%s", p.ContestID, p.ProblemID))
	}
	return strings.Join(parts, ", ")
}
