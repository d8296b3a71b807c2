package k8s

import (
	"fmt"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"

	"github.com/skillcoder/kbs-deployer/internal/logic/deployer"
)

const (
	probeContainerName = "probe"
	managedByLabel     = "app.kubernetes.io/managed-by"
)

func toServiceEndpoint(svc *corev1.Service) (deployer.ServiceEndpoint, error) {
	if len(svc.Spec.Ports) == 0 {
		return deployer.ServiceEndpoint{}, fmt.Errorf("service %s: %w", svc.Name, ErrNoServicePorts)
	}

	return deployer.ServiceEndpoint{
		IP:   svc.Spec.ClusterIP,
		Port: svc.Spec.Ports[0].Port,
	}, nil
}

func toK8sPod(pod deployer.ProbePod) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      pod.Name,
			Namespace: pod.Namespace,
			Labels: map[string]string{
				managedByLabel: fieldManager,
			},
		},
		Spec: corev1.PodSpec{
			RestartPolicy: corev1.RestartPolicyNever,
			Containers: []corev1.Container{
				{
					Name:    probeContainerName,
					Image:   pod.Image,
					Command: pod.Command,
				},
			},
		},
	}
}

// description accumulates a human readable dump for timeout diagnostics.
type description struct {
	b strings.Builder
}

func (d *description) empty() bool {
	return d.b.Len() == 0
}

func (d *description) String() string {
	return d.b.String()
}

func (d *description) deployment(dep *appsv1.Deployment) {
	var desired int32 = 1
	if dep.Spec.Replicas != nil {
		desired = *dep.Spec.Replicas
	}

	fmt.Fprintf(&d.b, "deployment/%s: ready %d/%d, updated %d, available %d\n",
		dep.Name,
		dep.Status.ReadyReplicas,
		desired,
		dep.Status.UpdatedReplicas,
		dep.Status.AvailableReplicas,
	)

	for _, c := range dep.Status.Conditions {
		fmt.Fprintf(&d.b, "  condition %s=%s reason=%s message=%q\n", c.Type, c.Status, c.Reason, c.Message)
	}
}

func (d *description) pod(pod *corev1.Pod) {
	fmt.Fprintf(&d.b, "pod/%s: phase=%s node=%s\n", pod.Name, pod.Status.Phase, pod.Spec.NodeName)

	for _, c := range pod.Status.Conditions {
		fmt.Fprintf(&d.b, "  condition %s=%s reason=%s message=%q\n", c.Type, c.Status, c.Reason, c.Message)
	}

	for _, cs := range pod.Status.ContainerStatuses {
		fmt.Fprintf(&d.b, "  container %s: image=%s ready=%t restarts=%d state=%s\n",
			cs.Name, cs.Image, cs.Ready, cs.RestartCount, containerState(cs.State))
	}
}

func (d *description) events(events []corev1.Event) {
	for i := range events {
		e := &events[i]
		fmt.Fprintf(&d.b, "  event %s %s: %s (x%d)\n", e.Type, e.Reason, e.Message, max(e.Count, 1))
	}
}

func (d *description) metrics(pm *metricsv1beta1.PodMetrics) {
	for _, c := range pm.Containers {
		fmt.Fprintf(&d.b, "  usage %s: cpu=%s memory=%s\n", c.Name, c.Usage.Cpu().String(), c.Usage.Memory().String())
	}
}

func (d *description) logs(pod, logs string) {
	fmt.Fprintf(&d.b, "==> pod/%s <==\n%s\n", pod, strings.TrimRight(logs, "\n"))
}

func containerState(s corev1.ContainerState) string {
	switch {
	case s.Running != nil:
		return "running"
	case s.Waiting != nil:
		return fmt.Sprintf("waiting(%s: %s)", s.Waiting.Reason, s.Waiting.Message)
	case s.Terminated != nil:
		return fmt.Sprintf("terminated(%s, exit %d)", s.Terminated.Reason, s.Terminated.ExitCode)
	default:
		return "unknown"
	}
}
