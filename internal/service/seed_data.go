package service

import (
	"time"

	"github.com/princeofgodman/figma-jobeee/internal/domain"
	"github.com/princeofgodman/figma-jobeee/internal/store"
)

// The sample dataset. Ids and timestamps are fixed so that repeated seeds of
// a wiped catalog produce identical content, and so the feed has a known
// order to test against.

var seedBase = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

func at(offset time.Duration) time.Time { return seedBase.Add(offset) }

func avatar(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}

// seedRecords returns the guard keys that mark a populated catalog and every
// record of the sample dataset, index lists included.
func seedRecords() (guards []string, records []store.KV) {
	users := []domain.User{
		{ID: "user-amara", Name: "Amara Osei", Avatar: avatar("amara")},
		{ID: "user-jonas", Name: "Jonas Weber", Avatar: avatar("jonas")},
		{ID: "user-priya", Name: "Priya Nair", Avatar: avatar("priya")},
		{ID: "user-tomas", Name: "Tomás Rivera", Avatar: avatar("tomas")},
		{ID: "user-lena", Name: "Lena Park", Avatar: avatar("lena")},
	}

	companies := []domain.Company{
		{ID: "company-technova", Name: "TechNova Labs", Logo: "https://images.jobeee.dev/logos/technova.png"},
		{ID: "company-brighthire", Name: "BrightHire", Logo: "https://images.jobeee.dev/logos/brighthire.png"},
		{ID: "company-cloudpeak", Name: "CloudPeak", Logo: "https://images.jobeee.dev/logos/cloudpeak.png"},
		{ID: "company-finlight", Name: "Finlight", Logo: "https://images.jobeee.dev/logos/finlight.png"},
	}

	stories := []domain.Story{
		{ID: "story-1", UserID: "user-amara", ThumbnailURL: "https://images.jobeee.dev/stories/amara-day.jpg", CreatedAt: at(72 * time.Hour)},
		{ID: "story-2", UserID: "user-jonas", ThumbnailURL: "https://images.jobeee.dev/stories/jonas-offer.jpg", CreatedAt: at(70 * time.Hour)},
		{ID: "story-3", UserID: "user-priya", ThumbnailURL: "https://images.jobeee.dev/stories/priya-talk.jpg", CreatedAt: at(65 * time.Hour)},
		{ID: "story-4", UserID: "user-tomas", ThumbnailURL: "https://images.jobeee.dev/stories/tomas-demo.jpg", CreatedAt: at(48 * time.Hour)},
		{ID: "story-5", UserID: "user-lena", ThumbnailURL: "https://images.jobeee.dev/stories/lena-onsite.jpg", CreatedAt: at(24 * time.Hour)},
	}

	threads := []domain.Thread{
		{
			ID:        "thread-onsite",
			CompanyID: "company-technova",
			Title:     "Whiteboard round or take-home: which would you pick?",
			Scenario: "TechNova lets candidates choose between a 45-minute whiteboard " +
				"session and a four-hour take-home project. You have a full-time job " +
				"and two young kids. Which do you pick, and what do you tell the recruiter?",
			Tags:         []string{"interviews", "engineering"},
			ImageURL:     "https://images.jobeee.dev/threads/onsite.jpg",
			CreatedAt:    at(72 * time.Hour),
			LikeCount:    24,
			CommentCount: 3,
		},
		{
			ID:        "thread-negotiation",
			CompanyID: "company-brighthire",
			Title:     "Negotiating your first offer without losing it",
			Scenario: "BrightHire made you an offer 10% under the range they posted. " +
				"The recruiter says the band is fixed. How hard do you push, and on what?",
			Tags:         []string{"offers", "negotiation"},
			CreatedAt:    at(48 * time.Hour),
			LikeCount:    41,
			CommentCount: 2,
		},
		{
			ID:        "thread-remote",
			CompanyID: "company-cloudpeak",
			Title:     "Async-first teams: dream or trap?",
			Scenario: "CloudPeak runs fully remote with no standing meetings. Your last " +
				"team lived in meetings. What would you ask in the interview to figure " +
				"out whether async actually works there?",
			Tags:         []string{"remote", "culture"},
			CreatedAt:    at(36 * time.Hour),
			LikeCount:    10,
			CommentCount: 2,
		},
		{
			ID:        "thread-portfolio",
			CompanyID: "company-finlight",
			Title:     "Do side projects still move the needle?",
			Scenario: "Finlight's hiring manager said they never look at GitHub links. " +
				"Half the advice online says the opposite. Where do you spend your " +
				"limited prep time?",
			Tags:         []string{"portfolio", "career"},
			CreatedAt:    at(12 * time.Hour),
			LikeCount:    17,
			CommentCount: 2,
		},
	}

	quizzes := []domain.Quiz{
		{
			ID:          "quiz-backend",
			CompanyID:   "company-technova",
			Title:       "Backend fundamentals check",
			Description: "Eight questions TechNova actually asks in screens. See how you score.",
			Tags:        []string{"engineering", "practice"},
			CreatedAt:   at(60 * time.Hour),
			LikeCount:   33,
		},
		{
			ID:          "quiz-culture",
			CompanyID:   "company-brighthire",
			Title:       "Which team culture fits you?",
			Description: "Five scenarios, no wrong answers. BrightHire's take on culture fit.",
			Tags:        []string{"culture"},
			CreatedAt:   at(6 * time.Hour),
			LikeCount:   12,
		},
	}

	comments := []domain.Comment{
		{ID: "comment-1", ThreadID: "thread-onsite", UserID: "user-jonas", UserName: "Jonas Weber", UserAvatar: avatar("jonas"), Content: "Take-home every time. I freeze on whiteboards and that tells them nothing about my actual work.", CreatedAt: at(73 * time.Hour)},
		{ID: "comment-2", ThreadID: "thread-onsite", UserID: "user-priya", UserName: "Priya Nair", UserAvatar: avatar("priya"), Content: "Four hours is never four hours though. I'd ask if the whiteboard round can be a pairing session instead.", CreatedAt: at(74 * time.Hour)},
		{ID: "comment-3", ThreadID: "thread-onsite", UserID: "user-lena", UserName: "Lena Park", UserAvatar: avatar("lena"), Content: "Picked the take-home at my last onsite and they still added a live round later. Ask up front.", CreatedAt: at(76 * time.Hour)},
		{ID: "comment-4", ThreadID: "thread-negotiation", UserID: "user-amara", UserName: "Amara Osei", UserAvatar: avatar("amara"), Content: "If base is fixed, everything else isn't. Signing bonus, review timeline, level.", CreatedAt: at(49 * time.Hour)},
		{ID: "comment-5", ThreadID: "thread-negotiation", UserID: "user-tomas", UserName: "Tomás Rivera", UserAvatar: avatar("tomas"), Content: "Get the posted range in writing and ask them to explain the gap. Politely. It works more often than people think.", CreatedAt: at(52 * time.Hour)},
		{ID: "comment-6", ThreadID: "thread-remote", UserID: "user-jonas", UserName: "Jonas Weber", UserAvatar: avatar("jonas"), Content: "Ask how decisions got made last quarter. If the answer is 'on a call', it's not async-first.", CreatedAt: at(38 * time.Hour)},
		{ID: "comment-7", ThreadID: "thread-remote", UserID: "user-amara", UserName: "Amara Osei", UserAvatar: avatar("amara"), Content: "Ask to read a real RFC or design doc thread. The writing culture is the culture.", CreatedAt: at(40 * time.Hour)},
		{ID: "comment-8", ThreadID: "thread-portfolio", UserID: "user-priya", UserName: "Priya Nair", UserAvatar: avatar("priya"), Content: "Nobody read mine until the final round, then it carried the conversation. Low odds, high payoff.", CreatedAt: at(13 * time.Hour)},
		{ID: "comment-9", ThreadID: "thread-portfolio", UserID: "user-lena", UserName: "Lena Park", UserAvatar: avatar("lena"), Content: "Spend the time on interview reps instead. A polished repo never got me past a screen.", CreatedAt: at(15 * time.Hour)},
	}

	aclonas := []domain.Aclona{
		{ID: "aclona-1", CompanyID: "company-technova", Title: "Inside TechNova's hiring loop", Description: "A recruiter walks through all four rounds and what each one screens for.", Duration: 540},
		{ID: "aclona-2", CompanyID: "company-brighthire", Title: "BrightHire office tour", Description: "Ninety seconds inside the Amsterdam office.", Duration: 300},
		{ID: "aclona-3", CompanyID: "company-cloudpeak", Title: "A week on CloudPeak's SRE rotation", Description: "What on-call actually looks like on a fully remote team.", Duration: 720},
	}

	guards = []string{store.StoryIndexKey(), store.ThreadIndexKey()}

	for _, u := range users {
		records = append(records, store.KV{Key: store.UserKey(u.ID), Value: u})
	}
	for _, c := range companies {
		records = append(records, store.KV{Key: store.CompanyKey(c.ID), Value: c})
	}

	storyIDs := make([]string, 0, len(stories))
	for _, st := range stories {
		records = append(records, store.KV{Key: store.StoryKey(st.ID), Value: st})
		storyIDs = append(storyIDs, st.ID)
	}

	threadIDs := make([]string, 0, len(threads))
	for _, t := range threads {
		records = append(records, store.KV{Key: store.ThreadKey(t.ID), Value: t})
		threadIDs = append(threadIDs, t.ID)
	}

	quizIDs := make([]string, 0, len(quizzes))
	for _, q := range quizzes {
		records = append(records, store.KV{Key: store.QuizKey(q.ID), Value: q})
		quizIDs = append(quizIDs, q.ID)
	}

	commentsByThread := make(map[string][]string)
	for _, c := range comments {
		records = append(records, store.KV{Key: store.CommentKey(c.ID), Value: c})
		commentsByThread[c.ThreadID] = append(commentsByThread[c.ThreadID], c.ID)
	}

	aclonaIDs := make([]string, 0, len(aclonas))
	for _, a := range aclonas {
		records = append(records, store.KV{Key: store.AclonaKey(a.ID), Value: a})
		aclonaIDs = append(aclonaIDs, a.ID)
	}

	records = append(records,
		store.KV{Key: store.StoryIndexKey(), Value: storyIDs},
		store.KV{Key: store.ThreadIndexKey(), Value: threadIDs},
		store.KV{Key: store.QuizIndexKey(), Value: quizIDs},
		store.KV{Key: store.AclonaIndexKey(), Value: aclonaIDs},
	)
	for _, t := range threads {
		records = append(records, store.KV{
			Key:   store.ThreadCommentsIndexKey(t.ID),
			Value: commentsByThread[t.ID],
		})
	}

	return guards, records
}
