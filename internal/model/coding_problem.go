package model

type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// CodingProblem is an authored Round 1 coding task. Hidden test cases stay
// inside the grading boundary and are never serialized in API responses.
type CodingProblem struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	DisplayedTestCases []TestCase `json:"displayed_test_cases"`
	HiddenTestCases    []TestCase `json:"-"`
}
