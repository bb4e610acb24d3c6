package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"go-pixelco-site/internal/domain"
)

const adminNotificationTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 20px; border-radius: 10px;">
    <div style="background: white; padding: 30px; border-radius: 10px; box-shadow: 0 10px 30px rgba(0,0,0,0.1);">
        <h2 style="color: #333; text-align: center; margin-bottom: 30px;">💌 Nuevo Contacto - {{.CompanyName}}</h2>
        <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
            <h3 style="color: #667eea; margin-bottom: 15px;">📋 Información del Cliente</h3>
            <p style="margin: 8px 0;"><strong>👤 Nombre:</strong> {{.Name}}</p>
            <p style="margin: 8px 0;"><strong>📧 Email:</strong> {{.Email}}</p>
            <p style="margin: 8px 0;"><strong>📱 Teléfono:</strong> {{.Phone}}</p>
            <p style="margin: 8px 0;"><strong>🛠️ Servicio:</strong> {{.Service}}</p>
        </div>
        <div style="background: #e3f2fd; padding: 20px; border-radius: 8px; border-left: 4px solid #2196f3;">
            <h4 style="color: #1976d2; margin-bottom: 10px;">💬 Mensaje</h4>
            <p style="color: #333; line-height: 1.6; margin: 0;">{{.Message}}</p>
        </div>
        <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
            <p style="color: #666; font-size: 14px;">📅 Recibido el {{.ReceivedAt}}</p>
        </div>
    </div>
</div>`

const clientAckTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: linear-gradient(135deg, #00f5ff, #7c3aed); padding: 20px; border-radius: 10px;">
    <div style="background: white; padding: 30px; border-radius: 10px; box-shadow: 0 10px 30px rgba(0,0,0,0.1);">
        <div style="text-align: center; margin-bottom: 30px;">
            <h1 style="color: #7c3aed; margin: 0;">{{.CompanyName}}</h1>
            <h2 style="color: #333; margin: 10px 0;">¡Gracias por contactarnos! 🚀</h2>
        </div>
        <p style="color: #333; font-size: 16px; line-height: 1.6;">Hola <strong>{{.Name}}</strong>,</p>
        <p style="color: #333; font-size: 16px; line-height: 1.6;">
            Hemos recibido tu mensaje sobre <strong>{{.Service}}</strong> y queremos agradecerte por tu interés en nuestros servicios.
        </p>
        <div style="background: #f0f8ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #00f5ff;">
            <p style="color: #333; margin: 0;">
                <strong>🕐 ¿Qué sigue?</strong><br>
                Nuestro equipo revisará tu solicitud y te contactaremos en las próximas 24 horas para discutir cómo podemos ayudarte a alcanzar tus objetivos digitales.
            </p>
        </div>
        <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <h4 style="color: #7c3aed; margin-bottom: 15px;">📞 Información de Contacto</h4>
            <p style="margin: 5px 0; color: #333;">📧 Email: {{.Contact.Email}}</p>
            <p style="margin: 5px 0; color: #333;">📱 Teléfono: {{.Contact.Phone}}</p>
            <p style="margin: 5px 0; color: #333;">📍 Ubicación: {{.Contact.Address}}</p>
        </div>
        <div style="text-align: center; margin-top: 30px;">
            <p style="color: #666; font-size: 14px;">Síguenos en redes sociales para estar al día con las últimas tendencias digitales</p>
            <div style="margin-top: 15px;">
                <a href="{{.Social.Facebook}}" style="text-decoration: none; margin: 0 10px; font-size: 20px;">📘</a>
                <a href="{{.Social.Instagram}}" style="text-decoration: none; margin: 0 10px; font-size: 20px;">📷</a>
                <a href="{{.Social.LinkedIn}}" style="text-decoration: none; margin: 0 10px; font-size: 20px;">💼</a>
            </div>
        </div>
        <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
            <p style="color: #999; font-size: 12px;">© {{.Year}} {{.CompanyName}}. Transformando ideas en realidad digital.</p>
        </div>
    </div>
</div>`

const phoneNotProvided = "No proporcionado"

var (
	adminTmpl  = template.Must(template.New("admin").Parse(adminNotificationTemplate))
	clientTmpl = template.Must(template.New("client").Parse(clientAckTemplate))
)

type adminNotificationData struct {
	CompanyName string
	Name        string
	Email       string
	Phone       string
	Service     string
	Message     string
	ReceivedAt  string
}

type clientAckData struct {
	CompanyName string
	Name        string
	Service     string
	Contact     domain.ContactChannels
	Social      domain.SocialLinks
	Year        int
}

func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	return body.String(), nil
}

// colombiaTime is UTC-5 all year round.
var colombiaTime = time.FixedZone("COT", -5*60*60)

var (
	spanishWeekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	spanishMonths   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// formatReceivedAt renders t the way es-CO long dates read,
// e.g. "domingo, 18 de octubre de 2026, 02:30 p. m.".
func formatReceivedAt(t time.Time) string {
	t = t.In(colombiaTime)

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	period := "a. m."
	if t.Hour() >= 12 {
		period = "p. m."
	}

	return fmt.Sprintf("%s, %d de %s de %d, %02d:%02d %s",
		spanishWeekdays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1], t.Year(),
		hour, t.Minute(), period)
}
