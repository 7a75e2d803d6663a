package store

// Typed key builders. All catalog keys follow the kind:id convention; index
// lists live under index:. Centralizing the prefixes here is what keeps the
// namespaces collision-free, so new kinds must be added here rather than
// built ad hoc at call sites.

// UserKey returns the catalog key for a user record.
func UserKey(id string) string { return "user:" + id }

// CompanyKey returns the catalog key for a company record.
func CompanyKey(id string) string { return "company:" + id }

// StoryKey returns the catalog key for a story record.
func StoryKey(id string) string { return "story:" + id }

// ThreadKey returns the catalog key for a thread record.
func ThreadKey(id string) string { return "thread:" + id }

// QuizKey returns the catalog key for a quiz record.
func QuizKey(id string) string { return "quiz:" + id }

// CommentKey returns the catalog key for a server-origin comment record.
func CommentKey(id string) string { return "comment:" + id }

// AclonaKey returns the catalog key for an aclona record.
func AclonaKey(id string) string { return "aclona:" + id }

// StoryIndexKey returns the key of the ordered list of all story ids.
func StoryIndexKey() string { return "index:stories" }

// ThreadIndexKey returns the key of the ordered list of all thread ids.
func ThreadIndexKey() string { return "index:threads" }

// QuizIndexKey returns the key of the ordered list of all quiz ids.
func QuizIndexKey() string { return "index:quizzes" }

// AclonaIndexKey returns the key of the ordered list of all aclona ids.
func AclonaIndexKey() string { return "index:aclonas" }

// ThreadCommentsIndexKey returns the key of the ordered list of server-origin
// comment ids for one thread.
func ThreadCommentsIndexKey(threadID string) string {
	return "index:comments:thread:" + threadID
}

// Keys maps ids through a key builder, preserving order.
func Keys(ids []string, build func(string) string) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = build(id)
	}
	return keys
}
