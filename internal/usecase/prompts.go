package usecase

import "fmt"

// Prompt templates. The JSON ones name the keys BuildOverallAssessment reads.

func SkillsPrompt(cvText string) string {
	return fmt.Sprintf(`Extract and categorize technical and soft skills from the following CV content.
Format the response as a JSON object with two arrays of strings: "technical" and "soft".
Respond with the JSON object only, without markdown or commentary.

CV Content:
%s`, cvText)
}

func ExperiencePrompt(cvText string) string {
	return fmt.Sprintf(`Analyze the work experience from the following CV content and provide:
1. Total years of experience ("totalYearsOfExperience", number)
2. Career progression ("careerProgression", string)
3. Key achievements ("keyAchievements", array of strings)
4. Industry expertise ("industryExpertise", array of strings)
Format as a structured JSON object. Respond with the JSON object only, without markdown or commentary.

CV Content:
%s`, cvText)
}

func SentimentPrompt(cvText string) string {
	return fmt.Sprintf(`Analyze the tone and professionalism of the following CV content.
Provide a JSON response with:
1. Overall tone ("overallTone": one lowercase word such as "professional" or "casual")
2. Confidence level ("confidenceLevel": number from 1 to 10)
3. Key positive aspects ("keyPositiveAspects": array of strings)
4. Areas for improvement ("areasForImprovement": array of strings)
Respond with the JSON object only, without markdown or commentary.

CV Content:
%s`, cvText)
}

func ValidationPrompt(cvText string) string {
	return fmt.Sprintf(`Analyze the following CV content for potential inconsistencies or red flags in:
1. Employment dates
2. Job titles and responsibilities
3. Educational claims
4. Skill claims
Provide a JSON response with validation results and confidence scores:
"validationResults" (object keyed by the areas above), "confidenceScore" (number from 1 to 10)
and "redFlags" (array of strings, empty when none).
Respond with the JSON object only, without markdown or commentary.

CV Content:
%s`, cvText)
}

func QualificationMatchPrompt(cvText, requirements string) string {
	return fmt.Sprintf(`Compare the following CV content with the job requirements and provide a matching score and detailed analysis:

CV Content:
%s

Job Requirements:
%s

Please provide:
1. Overall match percentage
2. Matching skills
3. Missing qualifications
4. Recommendations`, cvText, requirements)
}

func CVSummaryPrompt(cvText string) string {
	return fmt.Sprintf(`Analyze the following CV content and provide a structured analysis:
%s

Please provide:
1. Key skills and expertise
2. Work experience summary
3. Education background
4. Notable achievements
5. Overall professional profile assessment
6. Potential job role matches
7. Areas for improvement`, cvText)
}
