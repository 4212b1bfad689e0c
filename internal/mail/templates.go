package mail

import (
	"fmt"
	"strings"

	"talent-bridge/internal/domain/candidate"
)

// AptitudeQuizLink is where entry-level candidates advanced by a
// department head take their aptitude assessment.
const AptitudeQuizLink = "https://forms.office.com/r/ZR3zEC9Hqt"

// entryLevelExperience is the experience bucket that routes advanced
// candidates to the quiz instead of direct recruiter contact.
const entryLevelExperience = "0-1 Year"

func wrapHTML(content string) string {
	return `<html><body style="font-family: Arial, sans-serif; line-height: 1.6;">
<div style="max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 10px;">
` + content + `
<hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
<p style="font-size: 0.9em; color: #777;">Best regards,<br><strong>The HR Team</strong></p>
</div>
</body></html>`
}

// StatusMessage builds the email a candidate receives when their
// application moves to status. The template depends on both the status
// and, for department-head advances, the candidate's experience bucket.
func StatusMessage(c candidate.Candidate, status candidate.Status) Message {
	first := c.FirstName

	switch status {
	case candidate.StatusAdvancedByHOD:
		if c.Experience == entryLevelExperience {
			return Message{
				To:      []string{c.Email},
				Subject: "Next Step in Your Application: Aptitude Quiz",
				Body: fmt.Sprintf("Hi %s,\n\nCongratulations! You have been advanced to the next stage. "+
					"The next step is to complete a short aptitude quiz. Please use this link: %s\n\n"+
					"We wish you the best of luck!\n\nRegards,\nHR Team", first, AptitudeQuizLink),
				HTMLBody: wrapHTML(fmt.Sprintf(`<h2 style="color: #264143;">Congratulations, %s!</h2>
<p>Your profile has been reviewed and you have been advanced to the next stage of our hiring process.</p>
<p>The next step is to complete a short aptitude quiz. Please click the button below to access it:</p>
<p style="text-align: center; margin: 30px 0;">
<a href="%s" style="background-color: #0078d4; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Start Aptitude Quiz</a>
</p>
<p>Please complete the quiz at your earliest convenience. We wish you the best of luck!</p>`, first, AptitudeQuizLink)),
			}
		}
		return Message{
			To:      []string{c.Email},
			Subject: "An Update on Your Application",
			Body: fmt.Sprintf("Hi %s,\n\nCongratulations! Your profile has been reviewed and advanced. "+
				"Our recruitment team will be in touch with you shortly regarding the next steps in the process.\n\n"+
				"Best regards,\nHR Team", first),
			HTMLBody: wrapHTML(fmt.Sprintf(`<h2 style="color: #264143;">Congratulations, %s!</h2>
<p>We are pleased to inform you that after a successful review, your application has been advanced to the next stage.</p>
<p><strong>What's Next?</strong></p>
<p>Our recruitment team will be in contact with you soon to discuss the next steps in the hiring process.</p>
<p>Thank you for your continued interest.</p>`, first)),
		}

	case candidate.StatusAdvancedForInterview:
		return Message{
			To:      []string{c.Email},
			Subject: "Update: You've Been Selected for an Interview!",
			Body: fmt.Sprintf("Hi %s,\n\nGreat news! We would like to invite you for an interview. "+
				"Our recruitment team will be in touch with you shortly via a separate email to coordinate the date and time.\n\n"+
				"Congratulations, and we look forward to speaking with you soon.\n\nBest regards,\nHR Team", first),
			HTMLBody: wrapHTML(fmt.Sprintf(`<h2 style="color: #264143;">Great News, %s!</h2>
<p>After carefully reviewing your application, we are delighted to inform you that you have been selected to move forward to the interview stage.</p>
<p><strong>What's Next?</strong></p>
<p>Our recruitment team will be in contact with you very soon in a separate email to schedule your interview and provide all the necessary details.</p>
<p>Congratulations on reaching this important milestone. We look forward to speaking with you!</p>`, first)),
		}

	case candidate.StatusRejected:
		return Message{
			To:      []string{c.Email},
			Subject: "An Update on Your Application",
			Body: fmt.Sprintf("Hi %s,\n\nThank you for your interest and for taking the time to apply. "+
				"After careful consideration, we have decided not to move forward with your application at this time. "+
				"We encourage you to apply for other roles in the future and wish you the best of luck in your job search.\n\n"+
				"Regards,\nHR Team", first),
			HTMLBody: wrapHTML(fmt.Sprintf(`<h2 style="color: #264143;">An Update on Your Application</h2>
<p>Hi %s,</p>
<p>Thank you for your interest and for taking the time to apply with us. We received a large number of qualified applications, and after careful consideration, we have decided not to move forward with your candidacy for this role at this time.</p>
<p>This decision is not a reflection on your skills or qualifications. We encourage you to keep an eye on our careers page for future openings that may be a better fit.</p>
<p>We wish you the very best of luck in your job search.</p>`, first)),
		}

	default:
		return Message{
			To:      []string{c.Email},
			Subject: fmt.Sprintf("Update on Your Application Status: %s", status),
			Body: fmt.Sprintf("Hi %s,\n\nThis is an update regarding your application. "+
				"Your status has been changed to: %s.\n\nRegards,\nHR Team", first, status),
			HTMLBody: wrapHTML(fmt.Sprintf(`<h2 style="color: #264143;">Application Status Update</h2>
<p>Hi %s,</p>
<p>This is a notification to let you know that the status of your application has been updated to: <strong>%s</strong>.</p>`, first, status)),
		}
	}
}

// ReviewRequestMessage builds the tokenized-link email sent to an
// external departmental reviewer.
func ReviewRequestMessage(reviewerEmail string, ccEmails []string, candidateName, department, reviewLink string) Message {
	return Message{
		To:      []string{reviewerEmail},
		CC:      ccEmails,
		Subject: fmt.Sprintf("Review Requested for Candidate: %s", candidateName),
		Body: fmt.Sprintf("Hello,\n\nYou have been asked to review the profile for %s for a position in the %s department.\n\n"+
			"Please use this secure link to access the candidate's details (valid for 10 days):\n%s\n\n"+
			"If you did not expect this, please disregard this email.\n\nThank you,\nHR Department",
			candidateName, department, reviewLink),
		HTMLBody: fmt.Sprintf(`<html><head></head><body style="font-family: sans-serif;">
<h2>Candidate Review Request</h2>
<p>Hello,</p>
<p>You have been asked to review the profile for <strong>%s</strong> for a position in the %s department.</p>
<p>Please use the secure link below to access the candidate's details. This link is valid for 10 days.</p>
<p style="margin: 25px 0;">
<a href="%s" style="background-color: #264143; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View Candidate Profile</a>
</p>
<p>If you did not expect this, please disregard this email.</p>
<p>Thank you,<br>HR Department</p>
</body></html>`, candidateName, department, reviewLink),
	}
}

// UploadConfirmationMessage acknowledges a successful resume submission.
func UploadConfirmationMessage(c candidate.Candidate) Message {
	return Message{
		To:      []string{c.Email},
		Subject: "Resume Upload Confirmation",
		Body: fmt.Sprintf("Hi %s,\n\nYour resume has been uploaded successfully.\n\nRegards,\nHR Team",
			c.FirstName),
	}
}

// SplitCCList turns a comma-separated CC input into a trimmed list with
// empty entries discarded.
func SplitCCList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
