package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

// NotificationService sends SMS to applicants when an admin decides their
// verification. Sending is best-effort: failures are logged and never
// surfaced to the API caller.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// SendVerificationDecisionSMS notifies an applicant that their submission
// was approved or rejected. Runs in a goroutine so it never blocks the
// admin response.
func (s *NotificationService) SendVerificationDecisionSMS(phone, kind, status string) {
	if phone == "" {
		log.Println("SMS not sent: record has no phone number.")
		return
	}

	smsBody := fmt.Sprintf("Your %s submission has been %s.", kind, status)

	go sendSmsWithTextbelt(phone, smsBody)
}

// Textbelt's free key allows 1 SMS per day; a paid key comes from the env.
func sendSmsWithTextbelt(phone, message string) {
	textbeltKey := os.Getenv("TEXTBELT_API_KEY")

	postBody, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     textbeltKey,
	})

	resp, err := http.Post("https://textbelt.com/text", "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		log.Printf("Failed to send Textbelt request for number %s: %v", phone, err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	success, _ := result["success"].(bool)
	if !success {
		errorMsg, _ := result["error"].(string)
		log.Printf("Failed to send SMS via Textbelt to %s. Reason: %s", phone, errorMsg)
	} else {
		log.Printf("Successfully sent SMS via Textbelt to %s", phone)
	}
}
