package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/resume"
)

// maxUploadBytes caps uploaded résumé files.
const maxUploadBytes = 10 << 20 // 10 MiB

// GenerateRequest represents the request body for /api/generate
type GenerateRequest struct {
	StudentData    string `json:"studentData" validate:"required"`
	JobDescription string `json:"jobDescription"`
}

// GenerateResponse represents the response for /api/generate
type GenerateResponse struct {
	ResumeText  string           `json:"resumeText"`
	ResumeData  *resume.Document `json:"resumeData"`
	ATSScore    string           `json:"atsScore"`
	Suggestions string           `json:"suggestions"`
}

// ImproveRequest represents the request body for /api/improve
type ImproveRequest struct {
	Text string `json:"text" validate:"required"`
}

// CoverLetterRequest represents the request body for /api/generate-cover-letter
type CoverLetterRequest struct {
	StudentData    string          `json:"studentData" validate:"required"`
	JobDescription string          `json:"jobDescription" validate:"required"`
	ResumeData     json.RawMessage `json:"resumeData" validate:"required"`
}

// InterviewPrepRequest represents the request body for /api/generate-interview-prep
type InterviewPrepRequest struct {
	StudentData    string `json:"studentData" validate:"required"`
	JobDescription string `json:"jobDescription"`
}

// PortfolioRequest represents the request body for /api/generate-portfolio
// and /api/download-docx
type PortfolioRequest struct {
	ResumeData json.RawMessage `json:"resumeData" validate:"required"`
}

// CoverLetterDownloadRequest represents the request body for
// /api/download-cover-letter-docx
type CoverLetterDownloadRequest struct {
	CoverLetterText string `json:"coverLetterText" validate:"required"`
}

// decodeAndValidate decodes the JSON body into req and checks its validate
// tags. Failures come back as *ErrValidation with the offending JSON field.
func decodeAndValidate(r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON request body"}
	}

	if err := validator.New().Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			field := jsonFieldName(fieldErrors[0].StructField())
			return &ErrValidation{Field: field, Message: field + " is required"}
		}
		return &ErrValidation{Field: "body", Message: "invalid request"}
	}
	return nil
}

// jsonFieldName maps a struct field back to its json name for error
// messages. All request types use lowerCamel json tags matching the struct
// field with a lowered first letter.
func jsonFieldName(structField string) string {
	if structField == "" {
		return "body"
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

// parseClientResume decodes client-supplied resumeData. A shape the client
// sends that does not parse is the client's fault, so it maps to validation,
// not to the model-output error kind.
func parseClientResume(raw json.RawMessage) (*resume.Document, error) {
	doc, err := resume.Parse(string(raw))
	if err != nil {
		return nil, &ErrValidation{Field: "resumeData", Message: "resumeData is not a valid resume schema"}
	}
	return doc, nil
}

// handleGenerate generates a résumé schema, preview HTML, ATS score and
// suggestions from the candidate background.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.failRequest(w, "/api/generate", err)
		return
	}

	result, err := s.generator.GenerateResume(r.Context(), req.StudentData, req.JobDescription)
	if err != nil {
		s.failRequest(w, "/api/generate", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		ResumeText:  result.HTML,
		ResumeData:  result.Doc,
		ATSScore:    result.Doc.ATSScore,
		Suggestions: result.Doc.Suggestions,
	})
}

// handleImprove rewrites a text snippet for impact
func (s *Server) handleImprove(w http.ResponseWriter, r *http.Request) {
	var req ImproveRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.failRequest(w, "/api/improve", err)
		return
	}

	improved, err := s.generator.ImproveText(r.Context(), req.Text)
	if err != nil {
		s.failRequest(w, "/api/improve", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"improvedText": improved})
}

// handleGenerateCoverLetter writes a cover letter for a target role
func (s *Server) handleGenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req CoverLetterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.failRequest(w, "/api/generate-cover-letter", err)
		return
	}

	letter, err := s.generator.GenerateCoverLetter(r.Context(), req.StudentData, req.JobDescription, string(req.ResumeData))
	if err != nil {
		s.failRequest(w, "/api/generate-cover-letter", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"coverLetterText": letter})
}

// handleGenerateInterviewPrep produces interview preparation notes
func (s *Server) handleGenerateInterviewPrep(w http.ResponseWriter, r *http.Request) {
	var req InterviewPrepRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.failRequest(w, "/api/generate-interview-prep", err)
		return
	}

	notes, err := s.generator.GenerateInterviewPrep(r.Context(), req.StudentData, req.JobDescription)
	if err != nil {
		s.failRequest(w, "/api/generate-interview-prep", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"interviewPrepText": notes})
}

// handleGeneratePortfolio fills the portfolio page from a résumé schema
func (s *Server) handleGeneratePortfolio(w http.ResponseWriter, r *http.Request) {
	var req PortfolioRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.failRequest(w, "/api/generate-portfolio", err)
		return
	}

	doc, err := parseClientResume(req.ResumeData)
	if err != nil {
		s.failRequest(w, "/api/generate-portfolio", err)
		return
	}

	portfolio, err := rendering.RenderPortfolio(doc)
	if err != nil {
		s.failRequest(w, "/api/generate-portfolio", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"portfolioHtml": portfolio})
}

// handleDownloadResumeDocx builds the downloadable résumé document
func (s *Server) handleDownloadResumeDocx(w http.ResponseWriter, r *http.Request) {
	var req PortfolioRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.failRequest(w, "/api/download-docx", err)
		return
	}

	doc, err := parseClientResume(req.ResumeData)
	if err != nil {
		s.failRequest(w, "/api/download-docx", err)
		return
	}

	data, err := document.BuildResume(doc)
	if err != nil {
		s.failRequest(w, "/api/download-docx", err)
		return
	}

	s.docxResponse(w, "resume.docx", data)
}

// handleDownloadCoverLetterDocx builds the downloadable cover letter document
func (s *Server) handleDownloadCoverLetterDocx(w http.ResponseWriter, r *http.Request) {
	var req CoverLetterDownloadRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.failRequest(w, "/api/download-cover-letter-docx", err)
		return
	}

	data, err := document.BuildCoverLetter(req.CoverLetterText)
	if err != nil {
		s.failRequest(w, "/api/download-cover-letter-docx", err)
		return
	}

	s.docxResponse(w, "cover-letter.docx", data)
}

// handleExtractResume extracts plain text from an uploaded .docx résumé
func (s *Server) handleExtractResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.failRequest(w, "/api/extract-resume", &ErrValidation{Field: "resume", Message: "invalid multipart upload"})
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.failRequest(w, "/api/extract-resume", &ErrValidation{Field: "resume", Message: "resume file is required"})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".docx" {
		s.failRequest(w, "/api/extract-resume", &ErrValidation{Field: "resume", Message: "only .docx files are supported"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.failRequest(w, "/api/extract-resume", &ErrValidation{Field: "resume", Message: "failed to read upload"})
		return
	}

	text, err := document.ExtractText(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		s.failRequest(w, "/api/extract-resume", &ErrValidation{Field: "resume", Message: "file is not a readable .docx document"})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"resumeText": text})
}
