package mcpserver

// CategoryGuide describes the closed category set that LLM consumers
// should pick from when creating notes.
const CategoryGuide = `# MindNotes Category Guide

Every note carries exactly one category from this closed set. Pick the
symbolic name (left column) when calling the add_note tool.

| Symbolic name  | Display name  | When to use it                                                  |
|----------------|---------------|-----------------------------------------------------------------|
| STOICISM       | Stoicism      | Reflect on what you can control and accept what you cannot.     |
| DAILY_SUMMARY  | Daily Summary | What's one thing you learned today? How did your day go?        |
| THANKFULNESS   | Thankfulness  | List three things you are grateful for right now.               |
| ANALYSIS       | Analysis      | Analyze a situation objectively. What are the facts?            |
| OTHER          | Other         | General notes and thoughts without a specific theme.            |

## Rules

1. **Symbolic names are uppercase** and matched exactly; ` + "`" + `stoicism` + "`" + ` is not
   a valid category.
2. **Omitting the category** is fine: the note is stored as ` + "`" + `OTHER` + "`" + `.
3. **Mood is required** on every note: an integer from 1 (worst) to 5 (best).
   The calendar colors each day by the average mood of its notes.
4. **Title and content must be non-blank.** Whitespace-only values are
   rejected.
`
