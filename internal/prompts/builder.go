package prompts

// featuresFile is the embedded template file holding one prompt per feature.
const featuresFile = "features.json"

// Resume builds the résumé-generation prompt. jobDescription may be empty;
// when present the prompt instructs the model to tailor the resume and the
// ATS score to it.
func Resume(studentData, jobDescription string) string {
	jobBlock := ""
	if jobDescription != "" {
		jobBlock = Format(MustGet(featuresFile, "resume_job_description"), map[string]string{
			"JobDescription": jobDescription,
		})
	}
	return Format(MustGet(featuresFile, "resume"), map[string]string{
		"StudentData":         studentData,
		"JobDescriptionBlock": jobBlock,
	})
}

// Improve builds the text-improvement prompt.
func Improve(text string) string {
	return Format(MustGet(featuresFile, "improve"), map[string]string{
		"Text": text,
	})
}

// CoverLetter builds the cover-letter prompt from the candidate background,
// the target role and the already-generated resume schema JSON.
func CoverLetter(studentData, jobDescription, resumeJSON string) string {
	return Format(MustGet(featuresFile, "cover_letter"), map[string]string{
		"StudentData":    studentData,
		"JobDescription": jobDescription,
		"ResumeJSON":     resumeJSON,
	})
}

// InterviewPrep builds the interview-preparation prompt. jobDescription may
// be empty.
func InterviewPrep(studentData, jobDescription string) string {
	jobBlock := ""
	if jobDescription != "" {
		jobBlock = Format(MustGet(featuresFile, "interview_prep_job_description"), map[string]string{
			"JobDescription": jobDescription,
		})
	}
	return Format(MustGet(featuresFile, "interview_prep"), map[string]string{
		"StudentData":         studentData,
		"JobDescriptionBlock": jobBlock,
	})
}
