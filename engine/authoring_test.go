package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quizModels "elearn/models/quiz"
)

func TestCreateQuizRejectsTooFewOptions(t *testing.T) {
	db := newTestDB(t)
	module := createModule(t, db)

	_, err := CreateQuiz(db, CreateQuizInput{
		ModuleID: module.ID,
		Title:    "Midterm",
		Questions: []QuestionInput{{
			Text:    "Pick one",
			Type:    quizModels.TypeMultipleChoice,
			Options: []OptionInput{{Text: "Only choice", IsCorrect: true}},
		}},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, validationErr.QuestionIndex)
	assert.EqualValues(t, 0, countRows(t, db, &quizModels.Quiz{}))
}

func TestCreateQuizRejectsNoCorrectOption(t *testing.T) {
	db := newTestDB(t)
	module := createModule(t, db)

	_, err := CreateQuiz(db, CreateQuizInput{
		ModuleID: module.ID,
		Title:    "Midterm",
		Questions: []QuestionInput{{
			Text: "Pick one",
			Type: quizModels.TypeMultipleChoice,
			Options: []OptionInput{
				{Text: "Wrong"},
				{Text: "Also wrong"},
			},
		}},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "correct option")
}

func TestCreateQuizRejectsBlankQuestionText(t *testing.T) {
	db := newTestDB(t)
	module := createModule(t, db)

	_, err := CreateQuiz(db, CreateQuizInput{
		ModuleID: module.ID,
		Title:    "Midterm",
		Questions: []QuestionInput{{
			Text: "   ",
			Type: quizModels.TypeShortAnswer,
		}},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, validationErr.QuestionIndex)
}

func TestCreateQuizRequiresQuestions(t *testing.T) {
	db := newTestDB(t)
	module := createModule(t, db)

	_, err := CreateQuiz(db, CreateQuizInput{
		ModuleID:  module.ID,
		Title:     "Midterm",
		Questions: nil,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, -1, validationErr.QuestionIndex)
}

func TestCreateQuizRejectsUnknownQuestionType(t *testing.T) {
	db := newTestDB(t)
	module := createModule(t, db)

	_, err := CreateQuiz(db, CreateQuizInput{
		ModuleID: module.ID,
		Title:    "Midterm",
		Questions: []QuestionInput{{
			Text: "Write an essay",
			Type: "essay",
		}},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "essay")
}

func TestCreateQuizSynthesizesTrueFalseOptions(t *testing.T) {
	db := newTestDB(t)
	module := createModule(t, db)

	quizID, err := CreateQuiz(db, CreateQuizInput{
		ModuleID: module.ID,
		Title:    "Quick check",
		Questions: []QuestionInput{{
			Text:          "The sky is blue",
			Type:          quizModels.TypeTrueFalse,
			IsTrueCorrect: boolPtr(true),
		}},
	})
	require.NoError(t, err)

	var question quizModels.Question
	require.NoError(t, db.Preload("Options").Where("quiz_id = ?", quizID).First(&question).Error)

	require.Len(t, question.Options, 2)
	byText := map[string]bool{}
	for _, opt := range question.Options {
		byText[opt.OptionText] = opt.IsCorrect
	}
	assert.True(t, byText["True"])
	assert.False(t, byText["False"])
}

func TestCreateQuizTrueFalseRequiresFlag(t *testing.T) {
	db := newTestDB(t)
	module := createModule(t, db)

	_, err := CreateQuiz(db, CreateQuizInput{
		ModuleID: module.ID,
		Title:    "Quick check",
		Questions: []QuestionInput{{
			Text: "The sky is blue",
			Type: quizModels.TypeTrueFalse,
		}},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, validationErr.QuestionIndex)
}

func TestCreateQuizRoundTrip(t *testing.T) {
	db := newTestDB(t)
	module := createModule(t, db)

	duration := 30
	quizID, err := CreateQuiz(db, CreateQuizInput{
		ModuleID:        module.ID,
		Title:           "Final exam",
		Description:     "Covers the whole module",
		DurationMinutes: &duration,
		PassPercentage:  60,
		Questions: []QuestionInput{
			{
				Text: "Which is a relational database?",
				Type: quizModels.TypeMultipleChoice,
				Options: []OptionInput{
					{Text: "Redis"},
					{Text: "Kafka"},
					{Text: "PostgreSQL", IsCorrect: true},
				},
			},
			{
				Text:          "SQL is declarative",
				Type:          quizModels.TypeTrueFalse,
				IsTrueCorrect: boolPtr(true),
			},
			{
				Text: "Name one ACID property",
				Type: quizModels.TypeShortAnswer,
			},
		},
	})
	require.NoError(t, err)

	view, err := GetQuiz(db, quizID)
	require.NoError(t, err)

	assert.Equal(t, module.ID, view.ModuleID)
	assert.Equal(t, "Final exam", view.Title)
	assert.Equal(t, 60.0, view.PassPercentage)
	require.NotNil(t, view.DurationMinutes)
	assert.Equal(t, 30, *view.DurationMinutes)

	require.Len(t, view.Questions, 3)
	for i, q := range view.Questions {
		assert.Equal(t, i, q.DisplayOrder)
	}

	mc := view.Questions[0]
	assert.Equal(t, quizModels.TypeMultipleChoice, mc.Type)
	require.Len(t, mc.Options, 3)
	correctTexts := []string{}
	for _, opt := range mc.Options {
		if opt.IsCorrect {
			correctTexts = append(correctTexts, opt.Text)
		}
	}
	assert.Equal(t, []string{"PostgreSQL"}, correctTexts)

	tf := view.Questions[1]
	assert.Equal(t, quizModels.TypeTrueFalse, tf.Type)
	require.Len(t, tf.Options, 2)
	require.NotNil(t, tf.IsTrueCorrect)
	assert.True(t, *tf.IsTrueCorrect)

	sa := view.Questions[2]
	assert.Equal(t, quizModels.TypeShortAnswer, sa.Type)
	assert.Empty(t, sa.Options)
	assert.Nil(t, sa.IsTrueCorrect)
}

func TestCreateQuizRollsBackOnLaterInvalidQuestion(t *testing.T) {
	db := newTestDB(t)
	module := createModule(t, db)

	_, err := CreateQuiz(db, CreateQuizInput{
		ModuleID: module.ID,
		Title:    "Midterm",
		Questions: []QuestionInput{
			{
				Text: "Valid question",
				Type: quizModels.TypeMultipleChoice,
				Options: []OptionInput{
					{Text: "Yes", IsCorrect: true},
					{Text: "No"},
				},
			},
			{
				Text: "Broken question",
				Type: quizModels.TypeMultipleChoice,
				Options: []OptionInput{
					{Text: "Wrong"},
					{Text: "Also wrong"},
				},
			},
		},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 1, validationErr.QuestionIndex)

	// The whole unit of work rolled back: no orphan quiz, question or option rows
	assert.EqualValues(t, 0, countRows(t, db, &quizModels.Quiz{}))
	assert.EqualValues(t, 0, countRows(t, db, &quizModels.Question{}))
	assert.EqualValues(t, 0, countRows(t, db, &quizModels.Option{}))
}

func TestDeleteQuizCascades(t *testing.T) {
	db := newTestDB(t)
	module := createModule(t, db)

	quizID, err := CreateQuiz(db, CreateQuizInput{
		ModuleID: module.ID,
		Title:    "Disposable",
		Questions: []QuestionInput{{
			Text:          "Keep me?",
			Type:          quizModels.TypeTrueFalse,
			IsTrueCorrect: boolPtr(false),
		}},
	})
	require.NoError(t, err)

	require.NoError(t, DeleteQuiz(db, quizID))

	assert.EqualValues(t, 0, countRows(t, db, &quizModels.Quiz{}))
	assert.EqualValues(t, 0, countRows(t, db, &quizModels.Question{}))
	assert.EqualValues(t, 0, countRows(t, db, &quizModels.Option{}))

	var notFoundErr *NotFoundError
	require.ErrorAs(t, DeleteQuiz(db, quizID), &notFoundErr)
}
