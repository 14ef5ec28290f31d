package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/anyango5/cooking_class/configs"
	"github.com/anyango5/cooking_class/database"
	"github.com/anyango5/cooking_class/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const certificateCompletionCount = 5

const certificateTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Georgia, serif; text-align: center; margin: 80px; }
  .border { border: 12px double #8b4513; padding: 60px; }
  h1 { font-size: 42px; color: #8b4513; margin-bottom: 0; }
  h2 { font-size: 30px; margin: 24px 0 8px; }
  p { font-size: 18px; color: #444; }
</style>
</head>
<body>
  <div class="border">
    <h1>Certificate of Participation</h1>
    <p>Cooking with Class</p>
    <h2>{{.StudentName}}</h2>
    <p>has completed <b>{{.Title}}</b></p>
    <p>Instructor: {{.InstructorName}}</p>
    <p>{{.CompletionDate}}</p>
  </div>
</body>
</html>`

// CheckAndGenerateCertificate issues a participation certificate once a
// student has completed enough classes with the same instructor. The booking
// must come with Class.Instructor and User preloaded. Certificate generation
// is best effort: failures are logged, never surfaced to the caller.
func CheckAndGenerateCertificate(booking models.Booking) {
	var completedCount int64
	database.DB.Model(&models.Booking{}).
		Joins("JOIN classes on bookings.class_id = classes.id").
		Where("bookings.user_id = ? AND classes.instructor_id = ? AND bookings.status = ?",
			booking.UserID, booking.Class.InstructorID, models.BookingStatusCompleted).
		Count(&completedCount)

	if completedCount < certificateCompletionCount {
		return
	}

	title := fmt.Sprintf("%d Cooking Classes with %s", certificateCompletionCount, booking.Class.Instructor.FullName)

	var existingCert models.Certificate
	if err := database.DB.Where("student_id = ? AND title = ?", booking.UserID, title).First(&existingCert).Error; err == nil {
		return
	}

	htmlData, err := generateCertificateHTML(booking.User.FullName, booking.Class.Instructor.FullName, title)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate PDF: %v", err)
		return
	}

	uploadURL, err := uploadCertificate(pdfBytes, booking.UserID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return
	}

	newCertificate := models.Certificate{
		StudentID:      booking.UserID,
		InstructorID:   booking.Class.InstructorID,
		Title:          title,
		CompletionDate: time.Now(),
		CertificateURL: uploadURL,
	}

	if err := database.DB.Create(&newCertificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for student %s: %v", booking.UserID, err)
	} else {
		log.Printf("✅ Generated and uploaded certificate '%s' for student %s.", title, booking.UserID)
	}
}

func GetStudentCertificates(studentID uuid.UUID) ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := database.DB.
		Preload("Instructor").
		Where("student_id = ?", studentID).
		Order("completion_date desc").
		Find(&certificates).Error
	return certificates, err
}

func generateCertificateHTML(studentName, instructorName, title string) (string, error) {
	tmpl, err := template.New("certificate").Parse(certificateTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName    string
		InstructorName string
		Title          string
		CompletionDate string
	}{
		StudentName:    studentName,
		InstructorName: instructorName,
		Title:          title,
		CompletionDate: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificate(fileBytes []byte, studentID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", studentID, uuid.New().String()),
		Folder:       "cooking_class_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
