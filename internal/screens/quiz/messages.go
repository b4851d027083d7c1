package quiz

// quizStartedMsg is sent once a run has been sampled.
type quizStartedMsg struct{}

// quizEndMsg is sent when the last question has been answered.
type quizEndMsg struct{}
