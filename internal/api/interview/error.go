package interview

import (
	"InterviewGolang/pkg/response"
	"net/http"
)

var (
	ErrSessionNotFound         = response.NewError(http.StatusNotFound, "interview session not found")
	ErrSessionNotOwned         = response.NewError(http.StatusForbidden, "interview session does not belong to user")
	ErrSessionFinished         = response.NewError(http.StatusConflict, "interview session already finished")
	ErrSessionNotFinished      = response.NewError(http.StatusConflict, "interview session is not finished yet")
	ErrSessionAlreadyLive      = response.NewError(http.StatusConflict, "a live coaching connection already exists for this session")
	ErrNoLiveCoaching          = response.NewError(http.StatusConflict, "no live coaching connection for this session")
	ErrQuestionNotFound        = response.NewError(http.StatusNotFound, "question not found")
	ErrQuestionAlreadyAnswered = response.NewError(http.StatusConflict, "question already answered")
	ErrInvalidAudioFile        = response.NewError(http.StatusBadRequest, "invalid audio file")
	ErrFailedToUploadAudio     = response.NewError(http.StatusInternalServerError, "failed to upload audio file")
	ErrQuestionGeneration      = response.NewError(http.StatusBadGateway, "failed to generate interview questions")
	ErrTranscriptionFailed     = response.NewError(http.StatusBadGateway, "failed to transcribe answer audio")
	ErrEvaluationFailed        = response.NewError(http.StatusBadGateway, "failed to evaluate answer")
)
