package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken возвращается, когда email уже занят
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserInactive возвращается при попытке входа отключенного сотрудника
	ErrUserInactive = errors.New("user is inactive")

	// ErrInvalidRole возвращается при неизвестной роли
	ErrInvalidRole = errors.New("invalid user role")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
