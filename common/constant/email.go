package constant

const EmailRegistrationConfirmedTemplate = `
Dear %s,

Your registration is confirmed.

Registration Details:
------------------------------------------
Confirmation Code: %s
Party Size: %d
Amount Due: %s
------------------------------------------

Please keep your confirmation code, you will need it at the entrance and for any change to your registration.

Best regards,
Event Registration Team

Note: This is an automated message, please do not reply to this email.
`

const EmailRegistrationWaitlistedTemplate = `
Dear %s,

The event is currently full, so your party has been added to the waitlist.

Registration Details:
------------------------------------------
Confirmation Code: %s
Party Size: %d
Waitlist Position: #%d
------------------------------------------

Waitlisted parties are offered freed seats strictly in the order they joined. We will email you as soon as a spot opens up.

Best regards,
Event Registration Team

Note: This is an automated message, please do not reply to this email.
`

const EmailRegistrationPendingPaymentTemplate = `
Dear %s,

A spot is being held for your party. Your registration will be confirmed once your payment is received.

Registration Details:
------------------------------------------
Confirmation Code: %s
Party Size: %d
Amount Due: %s
------------------------------------------

If the payment fails you can retry it with your confirmation code while seats are still available.

Best regards,
Event Registration Team

Note: This is an automated message, please do not reply to this email.
`

const EmailRegistrationPromotedTemplate = `
Dear %s,

Good news! A spot opened up and your party has been moved off the waitlist.

Registration Details:
------------------------------------------
Confirmation Code: %s
Party Size: %d
Status: %s
------------------------------------------

Best regards,
Event Registration Team
`

const EmailPaymentSettledTemplate = `
Dear %s,

Your payment has been received and your registration is complete.

Payment Details:
------------------------------------------
Confirmation Code: %s
Amount Paid: %s
Status: %s
------------------------------------------

Best regards,
Event Registration Team
`

const EmailPaymentFailedTemplate = `
Dear %s,

Unfortunately your payment could not be processed.

Payment Details:
------------------------------------------
Confirmation Code: %s
Amount Due: %s
------------------------------------------

You can retry the payment with your confirmation code.

Best regards,
Event Registration Team
`

const EmailRegistrationCancelledTemplate = `
Dear %s,

Your registration has been cancelled.

Registration Details:
------------------------------------------
Confirmation Code: %s
Party Size: %d
------------------------------------------

If you have any questions, please contact the event organizer.

Best regards,
Event Registration Team

Note: This is an automated message, please do not reply to this email.
`
